package masters

// Option is one choice in a lookup typeahead.
type Option struct {
	ID     ID
	Name   string
	Active bool
	// Parent is the owning record's id, used to narrow dependent selectors.
	Parent ID
}

// LookupSpec describes a lookup list fetched from the backend.
type LookupSpec[T any] struct {
	Name     string
	Resource string
	Scope    Scope
	Option   func(T) Option
}

// Options converts rows to options.
func (s LookupSpec[T]) Options(rows []T) []Option {
	out := make([]Option, len(rows))
	for i, r := range rows {
		out[i] = s.Option(r)
	}
	return out
}

var (
	CountriesLookup = LookupSpec[Country]{
		Name:     "countries",
		Resource: "countries",
		Option: func(c Country) Option {
			return Option{ID: c.CountryID, Name: c.Name, Active: c.Status.IsActive(ActiveIsZero)}
		},
	}
	StatesLookup = LookupSpec[State]{
		Name:     "states",
		Resource: "states",
		Option: func(s State) Option {
			return Option{ID: s.StateID, Name: s.StateName, Active: s.Status.IsActive(ActiveIsZero), Parent: s.CountryID}
		},
	}
	CitiesLookup = LookupSpec[City]{
		Name:     "cities",
		Resource: "cities",
		Option: func(c City) Option {
			return Option{ID: c.CityID, Name: c.CityName, Active: c.Status.IsActive(ActiveIsZero), Parent: c.StateID}
		},
	}
	AccountNaturesLookup = LookupSpec[AccountNature]{
		Name:     "account-natures",
		Resource: "accountnature",
		Scope:    ScopeCompanyYear,
		Option: func(n AccountNature) Option {
			return Option{ID: n.NatureID, Name: n.AccountNature, Active: n.Status.IsActive(ActiveIsOne)}
		},
	}
	AccountTypesLookup = LookupSpec[AccountType]{
		Name:     "account-types",
		Resource: "accounttype",
		Scope:    ScopeHotel,
		Option: func(a AccountType) Option {
			return Option{ID: a.AccID, Name: a.AccName, Active: a.Status.IsActive(ActiveIsOne)}
		},
	}
	KitchenCategoriesLookup = LookupSpec[KitchenCategory]{
		Name:     "kitchen-categories",
		Resource: "KitchenCategory",
		Scope:    ScopeHotel,
		Option: func(k KitchenCategory) Option {
			return Option{ID: k.KitchenCategoryID, Name: k.KitchenCategory, Active: k.Status.IsActive(ActiveIsZero)}
		},
	}
	// KitchenSubCategoriesLookup options are narrowed by kitchen category.
	KitchenSubCategoriesLookup = LookupSpec[KitchenSubCategory]{
		Name:     "kitchen-subcategories",
		Resource: "KitchenSubCategory",
		Scope:    ScopeHotel,
		Option: func(k KitchenSubCategory) Option {
			return Option{ID: k.KitchenSubCategoryID, Name: k.KitchenSubCategory, Active: k.Status.IsActive(ActiveIsZero), Parent: k.KitchenCategoryID}
		},
	}
	KitchenGroupsLookup = LookupSpec[KitchenMainGroup]{
		Name:     "kitchen-groups",
		Resource: "KitchenMainGroup",
		Scope:    ScopeHotel,
		Option: func(k KitchenMainGroup) Option {
			return Option{ID: k.KitchenMainGroupID, Name: k.KitchenMainGroup, Active: k.Status.IsActive(ActiveIsZero)}
		},
	}
	ItemGroupsLookup = LookupSpec[ItemGroup]{
		Name:     "item-groups",
		Resource: "ItemGroup",
		Scope:    ScopeHotel,
		Option: func(g ItemGroup) Option {
			return Option{ID: g.ItemGroupID, Name: g.ItemGroupName, Active: g.Status.IsActive(ActiveIsZero)}
		},
	}
	ItemMainGroupsLookup = LookupSpec[ItemMainGroup]{
		Name:     "item-main-groups",
		Resource: "ItemMainGroup",
		Scope:    ScopeHotel,
		Option: func(g ItemMainGroup) Option {
			return Option{ID: g.ItemMainGroupID, Name: g.ItemGroupName, Active: g.Status.IsActive(ActiveIsZero)}
		},
	}
	UnitsLookup = LookupSpec[Unit]{
		Name:     "units",
		Resource: "unitmaster",
		Scope:    ScopeHotel,
		Option: func(u Unit) Option {
			return Option{ID: u.UnitID, Name: u.UnitName, Active: u.Status.IsActive(ActiveIsZero)}
		},
	}
	TaxGroupsLookup = LookupSpec[TaxGroup]{
		Name:     "tax-groups",
		Resource: "taxgroup",
		Scope:    ScopeHotel,
		Option: func(g TaxGroup) Option {
			return Option{ID: g.TaxGroupID, Name: g.Name, Active: g.Status.IsActive(ActiveIsOne)}
		},
	}
)

// OptionName returns the display name of id among opts.
func OptionName(opts []Option, id ID) (string, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o.Name, true
		}
	}
	return "", false
}
