package masters

import (
	"strconv"
	"time"

	"github.com/zjrosen/restodesk/internal/listview"
)

// DefaultDebounce is the search delay of every screen except tables.
const DefaultDebounce = 300 * time.Millisecond

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func asc(field string) listview.SortKey {
	return listview.SortKey{Field: field, Direction: listview.Ascending}
}

func stampHotel(h *ID, s Session) {
	if *h == "" {
		*h = s.HotelID
	}
}

// Ledgers manages account ledgers.
func Ledgers() Definition[Ledger] {
	active := func(l Ledger) bool { return l.Status.IsActive(ActiveIsOne) }
	return Definition[Ledger]{
		Name:     "ledgers",
		Title:    "Account Ledgers",
		Singular: "account ledger",
		Plural:   "account ledgers",
		Resource: "account-ledger",
		ListPath: "account-ledger/ledger",
		Scope:    ScopeHotel,
		Key:      func(l Ledger) ID { return l.LedgerID },
		SetKey:   func(l *Ledger, id ID) { l.LedgerID = id },
		Fields: []listview.Field[Ledger]{
			idField("LedgerId", func(l Ledger) ID { return l.LedgerID }),
			stringField("LedgerNo", func(l Ledger) string { return string(l.LedgerNo) }),
			stringField("Name", func(l Ledger) string { return l.Name }),
			stringField("address", func(l Ledger) string { return l.Address }),
			stringField("MobileNo", func(l Ledger) string { return string(l.MobileNo) }),
			stringField("GstNo", func(l Ledger) string { return l.GstNo }),
			numberField("OpeningBalance", func(l Ledger) float64 {
				f, _ := strconv.ParseFloat(string(l.OpeningBalance), 64)
				return f
			}),
			stringField("AccountType", func(l Ledger) string { return l.AccountType }),
			stringField("Status", func(l Ledger) string { return StatusLabel(active(l)) }),
		},
		Columns: []Column[Ledger]{
			{Title: "Ledger No", Width: 10, Sort: "LedgerNo", Value: func(l Ledger) string { return string(l.LedgerNo) }},
			{Title: "Name", Width: 24, Sort: "Name", Value: func(l Ledger) string { return l.Name }},
			{Title: "Address", Width: 24, Sort: "address", Value: func(l Ledger) string { return l.Address }},
			{Title: "Mobile", Width: 12, Sort: "MobileNo", Value: func(l Ledger) string { return string(l.MobileNo) }},
			{Title: "GST No", Width: 16, Sort: "GstNo", Value: func(l Ledger) string { return dash(l.GstNo) }},
			{Title: "Opening Balance", Width: 14, Sort: "OpeningBalance", Value: func(l Ledger) string { return string(l.OpeningBalance) }},
			{Title: "Account Type", Width: 16, Sort: "AccountType", Value: func(l Ledger) string { return l.AccountType }},
			{Title: "Status", Width: 8, Sort: "Status", Value: func(l Ledger) string { return StatusLabel(active(l)) }},
		},
		Searchable:  []string{"Name", "LedgerNo", "MobileNo", "address"},
		DefaultSort: asc("Name"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsOne,
		Active:      active,
		Form: []FormField[Ledger]{
			numberInput("LedgerNo", "Ledger No", func(l *Ledger) *Text { return &l.LedgerNo }),
			textInput("Name", "Name", func(l *Ledger) *string { return &l.Name }),
			textInput("MarathiName", "Marathi Name", func(l *Ledger) *string { return &l.MarathiName }),
			textInput("Address", "Address", func(l *Ledger) *string { return &l.Address }),
			lookupInput("StateID", "State", StatesLookup.Name, func(l *Ledger) *ID { return &l.StateID }, func(l *Ledger) *string { return &l.State }),
			withParent(lookupInput("CityID", "City", CitiesLookup.Name, func(l *Ledger) *ID { return &l.CityID }, func(l *Ledger) *string { return &l.City }),
				func(l Ledger) ID { return l.StateID }),
			numberInput("MobileNo", "Mobile No", func(l *Ledger) *Text { return &l.MobileNo }),
			numberInput("PhoneNo", "Phone No", func(l *Ledger) *Text { return &l.PhoneNo }),
			textInput("GstNo", "GST No", func(l *Ledger) *string { return &l.GstNo }),
			textInput("PanNo", "PAN No", func(l *Ledger) *string { return &l.PanNo }),
			numberInput("OpeningBalance", "Opening Balance", func(l *Ledger) *Text { return &l.OpeningBalance }),
			placeholder(textInput("OpeningBalanceDate", "Opening Balance Date", func(l *Ledger) *string { return &l.OpeningBalanceDate }), "YYYY-MM-DD"),
			lookupInput("AccountTypeID", "Account Type", AccountTypesLookup.Name, func(l *Ledger) *ID { return &l.AccountTypeID }, func(l *Ledger) *string { return &l.AccountType }),
			statusInput(ActiveIsOne, func(l *Ledger) *Status { return &l.Status }),
		},
		Blank: func(existing []Ledger) Ledger {
			return Ledger{LedgerNo: Text(NextNumber(existing, func(l Ledger) string { return string(l.LedgerNo) })), Status: ActiveStatus(ActiveIsOne)}
		},
		Stamp: func(l *Ledger, s Session) { stampHotel(&l.HotelID, s) },
	}
}

// AccountNatures manages account natures. Active is status 1.
func AccountNatures() Definition[AccountNature] {
	active := func(n AccountNature) bool { return n.Status.IsActive(ActiveIsOne) }
	return Definition[AccountNature]{
		Name:     "account-natures",
		Title:    "Account Natures",
		Singular: "account nature",
		Plural:   "account natures",
		Resource: "accountnature",
		Scope:    ScopeCompanyYear,
		Key:      func(n AccountNature) ID { return n.NatureID },
		SetKey:   func(n *AccountNature, id ID) { n.NatureID = id },
		Fields: []listview.Field[AccountNature]{
			idField("nature_id", func(n AccountNature) ID { return n.NatureID }),
			stringField("accountnature", func(n AccountNature) string { return n.AccountNature }),
			{Name: "status", Get: func(n AccountNature) listview.Value { return listview.Int(int64(n.Status)) }},
		},
		Columns: []Column[AccountNature]{
			{Title: "ID", Width: 6, Sort: "nature_id", Value: func(n AccountNature) string { return string(n.NatureID) }},
			{Title: "Account Nature", Width: 32, Sort: "accountnature", Value: func(n AccountNature) string { return n.AccountNature }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(n AccountNature) string { return StatusLabel(active(n)) }},
		},
		Searchable:  []string{"accountnature", "nature_id", "status"},
		DefaultSort: asc("accountnature"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsOne,
		Active:      active,
		Form: []FormField[AccountNature]{
			textInput("AccountNature", "Account Nature", func(n *AccountNature) *string { return &n.AccountNature }),
			statusInput(ActiveIsOne, func(n *AccountNature) *Status { return &n.Status }),
		},
		Blank: func([]AccountNature) AccountNature { return AccountNature{Status: ActiveStatus(ActiveIsOne)} },
		Stamp: func(n *AccountNature, s Session) {
			n.CompanyID, n.YearID = s.CompanyID, s.YearID
		},
	}
}

// AccountTypes manages account types.
func AccountTypes() Definition[AccountType] {
	active := func(a AccountType) bool { return a.Status.IsActive(ActiveIsOne) }
	return Definition[AccountType]{
		Name:     "account-types",
		Title:    "Account Types",
		Singular: "account type",
		Plural:   "account types",
		Resource: "accounttype",
		Scope:    ScopeHotel,
		Key:      func(a AccountType) ID { return a.AccID },
		SetKey:   func(a *AccountType, id ID) { a.AccID = id },
		Fields: []listview.Field[AccountType]{
			idField("AccID", func(a AccountType) ID { return a.AccID }),
			stringField("AccName", func(a AccountType) string { return a.AccName }),
			idField("UnderID", func(a AccountType) ID { return a.UnderID }),
			idField("NatureOfC", func(a AccountType) ID { return a.NatureOfC }),
			{Name: "status", Get: func(a AccountType) listview.Value { return listview.Int(int64(a.Status)) }},
		},
		Columns: []Column[AccountType]{
			{Title: "ID", Width: 6, Sort: "AccID", Value: func(a AccountType) string { return string(a.AccID) }},
			{Title: "Account Type", Width: 28, Sort: "AccName", Value: func(a AccountType) string { return a.AccName }},
			{Title: "Under", Width: 8, Sort: "UnderID", Value: func(a AccountType) string { return dash(string(a.UnderID)) }},
			{Title: "Nature", Width: 8, Sort: "NatureOfC", Value: func(a AccountType) string { return dash(string(a.NatureOfC)) }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(a AccountType) string { return StatusLabel(active(a)) }},
		},
		Searchable:  []string{"AccName", "UnderID", "NatureOfC", "status"},
		DefaultSort: asc("AccName"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsOne,
		Active:      active,
		Form: []FormField[AccountType]{
			textInput("AccName", "Account Type", func(a *AccountType) *string { return &a.AccName }),
			lookupInput("UnderID", "Under", AccountTypesLookup.Name, func(a *AccountType) *ID { return &a.UnderID }, nil),
			lookupInput("NatureOfC", "Nature", AccountNaturesLookup.Name, func(a *AccountType) *ID { return &a.NatureOfC }, nil),
			statusInput(ActiveIsOne, func(a *AccountType) *Status { return &a.Status }),
		},
		Blank: func([]AccountType) AccountType { return AccountType{Status: ActiveStatus(ActiveIsOne)} },
		Stamp: func(a *AccountType, s Session) { stampHotel(&a.HotelID, s) },
	}
}

// Customers manages customer profiles. Customers carry no status.
func Customers() Definition[Customer] {
	return Definition[Customer]{
		Name:     "customers",
		Title:    "Customers",
		Singular: "customer",
		Plural:   "customers",
		Resource: "customer",
		Key:      func(c Customer) ID { return c.CustomerID },
		SetKey:   func(c *Customer, id ID) { c.CustomerID = id },
		Fields: []listview.Field[Customer]{
			idField("customerid", func(c Customer) ID { return c.CustomerID }),
			stringField("name", func(c Customer) string { return c.Name }),
			stringField("mobile", func(c Customer) string { return string(c.Mobile) }),
			stringField("mail", func(c Customer) string { return c.Mail }),
			stringField("city_name", func(c Customer) string { return c.CityName }),
			stringField("state_name", func(c Customer) string { return c.StateName }),
		},
		Columns: []Column[Customer]{
			{Title: "Name", Width: 24, Sort: "name", Value: func(c Customer) string { return c.Name }},
			{Title: "Mobile", Width: 14, Sort: "mobile", Value: func(c Customer) string {
				if c.CountryCode != "" {
					return c.CountryCode + " " + string(c.Mobile)
				}
				return string(c.Mobile)
			}},
			{Title: "Email", Width: 24, Sort: "mail", Value: func(c Customer) string { return dash(c.Mail) }},
			{Title: "City", Width: 14, Sort: "city_name", Value: func(c Customer) string { return c.CityName }},
			{Title: "State", Width: 14, Sort: "state_name", Value: func(c Customer) string { return c.StateName }},
		},
		Searchable:  []string{"name", "mobile", "mail", "city_name"},
		DefaultSort: asc("name"),
		Debounce:    DefaultDebounce,
		Form: []FormField[Customer]{
			textInput("Name", "Customer Name", func(c *Customer) *string { return &c.Name }),
			placeholder(textInput("CountryCode", "Country Code", func(c *Customer) *string { return &c.CountryCode }), "+91"),
			numberInput("Mobile", "Mobile", func(c *Customer) *Text { return &c.Mobile }),
			textInput("Mail", "Email", func(c *Customer) *string { return &c.Mail }),
			textInput("Address1", "Address 1", func(c *Customer) *string { return &c.Address1 }),
			textInput("Address2", "Address 2", func(c *Customer) *string { return &c.Address2 }),
			lookupInput("StateID", "State", StatesLookup.Name, func(c *Customer) *ID { return &c.StateID }, func(c *Customer) *string { return &c.StateName }),
			withParent(lookupInput("CityID", "City", CitiesLookup.Name, func(c *Customer) *ID { return &c.CityID }, func(c *Customer) *string { return &c.CityName }),
				func(c Customer) ID { return c.StateID }),
			numberInput("Pincode", "Pincode", func(c *Customer) *Text { return &c.Pincode }),
			textInput("GstNo", "GST No", func(c *Customer) *string { return &c.GstNo }),
			numberInput("Fssai", "FSSAI", func(c *Customer) *Text { return &c.Fssai }),
			textInput("PanNo", "PAN No", func(c *Customer) *string { return &c.PanNo }),
			numberInput("AadharNo", "Aadhar No", func(c *Customer) *Text { return &c.AadharNo }),
			placeholder(textInput("Birthday", "Birthday", func(c *Customer) *string { return &c.Birthday }), "YYYY-MM-DD"),
			placeholder(textInput("Anniversary", "Anniversary", func(c *Customer) *string { return &c.Anniversary }), "YYYY-MM-DD"),
			boolInput("CreateWallet", "Create Wallet", func(c *Customer) *bool { return &c.CreateWallet }),
		},
		Blank: func([]Customer) Customer { return Customer{CountryCode: "+91"} },
	}
}

// KitchenCategories manages kitchen categories. Active is status 0.
func KitchenCategories() Definition[KitchenCategory] {
	active := func(k KitchenCategory) bool { return k.Status.IsActive(ActiveIsZero) }
	return Definition[KitchenCategory]{
		Name:     "kitchen-categories",
		Title:    "Kitchen Categories",
		Singular: "kitchen category",
		Plural:   "kitchen categories",
		Resource: "KitchenCategory",
		Scope:    ScopeHotel,
		Key:      func(k KitchenCategory) ID { return k.KitchenCategoryID },
		SetKey:   func(k *KitchenCategory, id ID) { k.KitchenCategoryID = id },
		Fields: []listview.Field[KitchenCategory]{
			idField("kitchencategoryid", func(k KitchenCategory) ID { return k.KitchenCategoryID }),
			stringField("Kitchen_Category", func(k KitchenCategory) string { return k.KitchenCategory }),
			stringField("Description", func(k KitchenCategory) string { return k.Description }),
			stringField("status", func(k KitchenCategory) string { return StatusLabel(active(k)) }),
		},
		Columns: []Column[KitchenCategory]{
			{Title: "Category", Width: 24, Sort: "Kitchen_Category", Value: func(k KitchenCategory) string { return k.KitchenCategory }},
			{Title: "Description", Width: 36, Sort: "Description", Value: func(k KitchenCategory) string { return k.Description }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(k KitchenCategory) string { return StatusLabel(active(k)) }},
		},
		Searchable:  []string{"Kitchen_Category", "Description"},
		DefaultSort: asc("Kitchen_Category"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsZero,
		Active:      active,
		Form: []FormField[KitchenCategory]{
			textInput("KitchenCategory", "Category Name", func(k *KitchenCategory) *string { return &k.KitchenCategory }),
			textInput("Description", "Description", func(k *KitchenCategory) *string { return &k.Description }),
			textInput("AlternativeName", "Alternative Name", func(k *KitchenCategory) *string { return &k.AlternativeName }),
			textInput("AlternativeDescription", "Alternative Description", func(k *KitchenCategory) *string { return &k.AlternativeDescription }),
			placeholder(textInput("CategoryColor", "Color", func(k *KitchenCategory) *string { return &k.CategoryColor }), "#ff8800"),
			statusInput(ActiveIsZero, func(k *KitchenCategory) *Status { return &k.Status }),
		},
		Blank: func([]KitchenCategory) KitchenCategory { return KitchenCategory{Status: ActiveStatus(ActiveIsZero)} },
		Stamp: func(k *KitchenCategory, s Session) { stampHotel(&k.HotelID, s) },
	}
}

// Units manages units of measure. Active is status 0.
func Units() Definition[Unit] {
	active := func(u Unit) bool { return u.Status.IsActive(ActiveIsZero) }
	return Definition[Unit]{
		Name:     "units",
		Title:    "Units",
		Singular: "unit",
		Plural:   "units",
		Resource: "unitmaster",
		Scope:    ScopeHotel,
		Key:      func(u Unit) ID { return u.UnitID },
		SetKey:   func(u *Unit, id ID) { u.UnitID = id },
		Fields: []listview.Field[Unit]{
			idField("unitid", func(u Unit) ID { return u.UnitID }),
			stringField("unit_name", func(u Unit) string { return u.UnitName }),
			stringField("status", func(u Unit) string { return StatusLabel(active(u)) }),
		},
		Columns: []Column[Unit]{
			{Title: "Unit", Width: 24, Sort: "unit_name", Value: func(u Unit) string { return u.UnitName }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(u Unit) string { return StatusLabel(active(u)) }},
		},
		Searchable:  []string{"unit_name"},
		DefaultSort: asc("unit_name"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsZero,
		Active:      active,
		Form: []FormField[Unit]{
			textInput("UnitName", "Unit Name", func(u *Unit) *string { return &u.UnitName }),
			statusInput(ActiveIsZero, func(u *Unit) *Status { return &u.Status }),
		},
		Blank: func([]Unit) Unit { return Unit{Status: ActiveStatus(ActiveIsZero)} },
		Stamp: func(u *Unit, s Session) { stampHotel(&u.HotelID, s) },
	}
}

// Tables manages dining tables. The search debounce is 500ms here.
func Tables() Definition[Table] {
	active := func(t Table) bool { return t.Status.IsActive(ActiveIsOne) }
	return Definition[Table]{
		Name:     "tables",
		Title:    "Table Management",
		Singular: "table",
		Plural:   "tables",
		Resource: "tablemanagement",
		Scope:    ScopeHotel,
		Key:      func(t Table) ID { return t.TableID },
		SetKey:   func(t *Table, id ID) { t.TableID = id },
		Fields: []listview.Field[Table]{
			idField("tableid", func(t Table) ID { return t.TableID }),
			stringField("table_name", func(t Table) string { return t.TableName }),
			stringField("hotel_name", func(t Table) string { return t.HotelName }),
			stringField("outlet_name", func(t Table) string { return t.OutletName }),
			stringField("status", func(t Table) string { return StatusLabel(active(t)) }),
		},
		Columns: []Column[Table]{
			{Title: "Table", Width: 16, Sort: "table_name", Value: func(t Table) string { return t.TableName }},
			{Title: "Hotel", Width: 20, Sort: "hotel_name", Value: func(t Table) string { return t.HotelName }},
			{Title: "Outlet", Width: 20, Sort: "outlet_name", Value: func(t Table) string { return t.OutletName }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(t Table) string { return StatusLabel(active(t)) }},
		},
		Searchable:  []string{"table_name", "hotel_name", "outlet_name"},
		DefaultSort: asc("table_name"),
		Debounce:    500 * time.Millisecond,
		Convention:  ActiveIsOne,
		Active:      active,
		Form: []FormField[Table]{
			textInput("TableName", "Table Name", func(t *Table) *string { return &t.TableName }),
			textInput("OutletName", "Outlet", func(t *Table) *string { return &t.OutletName }),
			numberInput("OutletID", "Outlet ID", func(t *Table) *ID { return &t.OutletID }),
			statusInput(ActiveIsOne, func(t *Table) *Status { return &t.Status }),
		},
		Blank: func([]Table) Table { return Table{Status: ActiveStatus(ActiveIsOne)} },
		Stamp: func(t *Table, s Session) { stampHotel(&t.HotelID, s) },
	}
}

// TableDepartments manages table departments.
func TableDepartments() Definition[TableDepartment] {
	active := func(d TableDepartment) bool { return d.Status.IsActive(ActiveIsOne) }
	return Definition[TableDepartment]{
		Name:     "table-departments",
		Title:    "Table Departments",
		Singular: "department",
		Plural:   "departments",
		Resource: "table-department",
		Scope:    ScopeHotel,
		Key:      func(d TableDepartment) ID { return d.DepartmentID },
		SetKey:   func(d *TableDepartment, id ID) { d.DepartmentID = id },
		Fields: []listview.Field[TableDepartment]{
			idField("departmentid", func(d TableDepartment) ID { return d.DepartmentID }),
			stringField("department_name", func(d TableDepartment) string { return d.DepartmentName }),
			stringField("hotel_name", func(d TableDepartment) string { return d.HotelName }),
			stringField("outlet_name", func(d TableDepartment) string { return d.OutletName }),
			stringField("status", func(d TableDepartment) string { return StatusLabel(active(d)) }),
		},
		Columns: []Column[TableDepartment]{
			{Title: "Department", Width: 24, Sort: "department_name", Value: func(d TableDepartment) string { return d.DepartmentName }},
			{Title: "Hotel", Width: 20, Sort: "hotel_name", Value: func(d TableDepartment) string { return d.HotelName }},
			{Title: "Outlet", Width: 20, Sort: "outlet_name", Value: func(d TableDepartment) string { return d.OutletName }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(d TableDepartment) string { return StatusLabel(active(d)) }},
		},
		Searchable:  []string{"department_name", "outlet_name"},
		DefaultSort: asc("department_name"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsOne,
		Active:      active,
		Form: []FormField[TableDepartment]{
			textInput("DepartmentName", "Department Name", func(d *TableDepartment) *string { return &d.DepartmentName }),
			textInput("OutletName", "Outlet", func(d *TableDepartment) *string { return &d.OutletName }),
			numberInput("OutletID", "Outlet ID", func(d *TableDepartment) *ID { return &d.OutletID }),
			lookupInput("TaxGroupID", "Tax Group", TaxGroupsLookup.Name, func(d *TableDepartment) *ID { return &d.TaxGroupID }, nil),
			statusInput(ActiveIsOne, func(d *TableDepartment) *Status { return &d.Status }),
		},
		Blank: func([]TableDepartment) TableDepartment { return TableDepartment{Status: ActiveStatus(ActiveIsOne)} },
		Stamp: func(d *TableDepartment, s Session) { stampHotel(&d.HotelID, s) },
	}
}

// TaxConfigs manages tax configurations. Active is a boolean here.
func TaxConfigs() Definition[TaxConfig] {
	active := func(t TaxConfig) bool { return t.IsActive }
	return Definition[TaxConfig]{
		Name:     "tax-configs",
		Title:    "Tax Configuration",
		Singular: "tax configuration",
		Plural:   "tax configurations",
		Resource: "taxconfiguration",
		Key:      func(t TaxConfig) ID { return t.ID },
		SetKey:   func(t *TaxConfig, id ID) { t.ID = id },
		Fields: []listview.Field[TaxConfig]{
			idField("id", func(t TaxConfig) ID { return t.ID }),
			stringField("taxName", func(t TaxConfig) string { return t.TaxName }),
			stringField("type", func(t TaxConfig) string { return t.Type }),
			stringField("taxProductGroup", func(t TaxConfig) string { return t.TaxProductGroup }),
			stringField("brandName", func(t TaxConfig) string { return t.BrandName }),
			numberField("taxPercentage", func(t TaxConfig) float64 { return t.TaxPercentage }),
			stringField("isActive", func(t TaxConfig) string { return StatusLabel(t.IsActive) }),
		},
		Columns: []Column[TaxConfig]{
			{Title: "Tax Name", Width: 18, Sort: "taxName", Value: func(t TaxConfig) string { return t.TaxName }},
			{Title: "Type", Width: 8, Sort: "type", Value: func(t TaxConfig) string { return t.Type }},
			{Title: "Product Group", Width: 18, Sort: "taxProductGroup", Value: func(t TaxConfig) string { return t.TaxProductGroup }},
			{Title: "Brand", Width: 16, Sort: "brandName", Value: func(t TaxConfig) string { return dash(t.BrandName) }},
			{Title: "Tax %", Width: 7, Sort: "taxPercentage", Value: func(t TaxConfig) string {
				return strconv.FormatFloat(t.TaxPercentage, 'f', -1, 64)
			}},
			{Title: "Status", Width: 8, Sort: "isActive", Value: func(t TaxConfig) string { return StatusLabel(t.IsActive) }},
		},
		Searchable:  []string{"taxName", "type", "taxProductGroup", "brandName"},
		DefaultSort: asc("taxName"),
		Debounce:    DefaultDebounce,
		Active:      active,
		Form: []FormField[TaxConfig]{
			textInput("TaxName", "Tax Name", func(t *TaxConfig) *string { return &t.TaxName }),
			placeholder(textInput("Type", "Type", func(t *TaxConfig) *string { return &t.Type }), "CGST"),
			textInput("TaxProductGroup", "Tax Product Group", func(t *TaxConfig) *string { return &t.TaxProductGroup }),
			textInput("BrandName", "Brand", func(t *TaxConfig) *string { return &t.BrandName }),
			floatInput("TaxPercentage", "Tax %", func(t *TaxConfig) *float64 { return &t.TaxPercentage }),
			boolInput("IsActive", "Active", func(t *TaxConfig) *bool { return &t.IsActive }),
		},
		Blank: func([]TaxConfig) TaxConfig { return TaxConfig{IsActive: true} },
	}
}

// MenuItems manages the menu. Active is status 1.
func MenuItems() Definition[MenuItem] {
	active := func(m MenuItem) bool { return m.Status.IsActive(ActiveIsOne) }
	price := func(m MenuItem) float64 {
		f, _ := strconv.ParseFloat(string(m.Price), 64)
		return f
	}
	return Definition[MenuItem]{
		Name:     "menu-items",
		Title:    "Menu",
		Singular: "menu item",
		Plural:   "menu items",
		Resource: "menu",
		Scope:    ScopeHotel,
		Key:      func(m MenuItem) ID { return m.RestItemID },
		SetKey:   func(m *MenuItem, id ID) { m.RestItemID = id },
		Fields: []listview.Field[MenuItem]{
			idField("restitemid", func(m MenuItem) ID { return m.RestItemID }),
			numberField("item_no", func(m MenuItem) float64 {
				n, _ := strconv.ParseFloat(string(m.ItemNo), 64)
				return n
			}),
			stringField("item_name", func(m MenuItem) string { return m.ItemName }),
			stringField("short_name", func(m MenuItem) string { return m.ShortName }),
			stringField("itemgroupname", func(m MenuItem) string { return m.ItemGroupName }),
			numberField("price", price),
			stringField("status", func(m MenuItem) string { return StatusLabel(active(m)) }),
		},
		Columns: []Column[MenuItem]{
			{Title: "Item No", Width: 8, Sort: "item_no", Value: func(m MenuItem) string { return string(m.ItemNo) }},
			{Title: "Item Name", Width: 28, Sort: "item_name", Value: func(m MenuItem) string { return m.ItemName }},
			{Title: "Short Name", Width: 12, Sort: "short_name", Value: func(m MenuItem) string { return dash(m.ShortName) }},
			{Title: "Item Group", Width: 18, Sort: "itemgroupname", Value: func(m MenuItem) string { return dash(m.ItemGroupName) }},
			{Title: "Price", Width: 10, Sort: "price", Value: func(m MenuItem) string { return strconv.FormatFloat(price(m), 'f', 2, 64) }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(m MenuItem) string { return StatusLabel(active(m)) }},
		},
		Searchable:  []string{"item_name", "item_no", "short_name", "itemgroupname"},
		DefaultSort: asc("item_no"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsOne,
		Active:      active,
		Form: []FormField[MenuItem]{
			numberInput("ItemNo", "Item No", func(m *MenuItem) *Text { return &m.ItemNo }),
			textInput("ItemName", "Item Name", func(m *MenuItem) *string { return &m.ItemName }),
			textInput("PrintName", "Print Name", func(m *MenuItem) *string { return &m.PrintName }),
			textInput("ShortName", "Short Name", func(m *MenuItem) *string { return &m.ShortName }),
			lookupInput("KitchenCategoryID", "Kitchen Category", KitchenCategoriesLookup.Name, func(m *MenuItem) *ID { return &m.KitchenCategoryID }, nil),
			withParent(lookupInput("KitchenSubCategoryID", "Kitchen Sub Category", KitchenSubCategoriesLookup.Name, func(m *MenuItem) *ID { return &m.KitchenSubCategoryID }, nil),
				func(m MenuItem) ID { return m.KitchenCategoryID }),
			lookupInput("KitchenMainGroupID", "Kitchen Group", KitchenGroupsLookup.Name, func(m *MenuItem) *ID { return &m.KitchenMainGroupID }, nil),
			lookupInput("ItemGroupID", "Item Group", ItemGroupsLookup.Name, func(m *MenuItem) *ID { return &m.ItemGroupID }, func(m *MenuItem) *string { return &m.ItemGroupName }),
			lookupInput("ItemMainGroupID", "Item Main Group", ItemMainGroupsLookup.Name, func(m *MenuItem) *ID { return &m.ItemMainGroupID }, nil),
			lookupInput("StockUnit", "Stock Unit", UnitsLookup.Name, func(m *MenuItem) *ID { return &m.StockUnit }, nil),
			placeholder(numberInput("Price", "Price", func(m *MenuItem) *Text { return &m.Price }), "0.00"),
			lookupInput("TaxGroupID", "Tax Group", TaxGroupsLookup.Name, func(m *MenuItem) *ID { return &m.TaxGroupID }, nil),
			numberInput("HSNCode", "HSN Code", func(m *MenuItem) *Text { return &m.HSNCode }),
			statusInput(ActiveIsOne, func(m *MenuItem) *Status { return &m.Status }),
		},
		Blank: func(existing []MenuItem) MenuItem {
			return MenuItem{ItemNo: Text(NextNumber(existing, func(m MenuItem) string { return string(m.ItemNo) })), Status: ActiveStatus(ActiveIsOne)}
		},
		Stamp: func(m *MenuItem, s Session) { stampHotel(&m.HotelID, s) },
	}
}

// KitchenSubCategories manages kitchen sub categories. Active is status 0.
func KitchenSubCategories() Definition[KitchenSubCategory] {
	active := func(k KitchenSubCategory) bool { return k.Status.IsActive(ActiveIsZero) }
	return Definition[KitchenSubCategory]{
		Name:     "kitchen-subcategories",
		Title:    "Kitchen Sub Categories",
		Singular: "kitchen sub category",
		Plural:   "kitchen sub categories",
		Resource: "KitchenSubCategory",
		Scope:    ScopeHotel,
		Key:      func(k KitchenSubCategory) ID { return k.KitchenSubCategoryID },
		SetKey:   func(k *KitchenSubCategory, id ID) { k.KitchenSubCategoryID = id },
		Fields: []listview.Field[KitchenSubCategory]{
			idField("kitchensubcategoryid", func(k KitchenSubCategory) ID { return k.KitchenSubCategoryID }),
			stringField("Kitchen_sub_category", func(k KitchenSubCategory) string { return k.KitchenSubCategory }),
			stringField("Kitchen_Category", func(k KitchenSubCategory) string { return k.KitchenCategory }),
			stringField("Kitchen_main_Group", func(k KitchenSubCategory) string { return k.KitchenMainGroup }),
			stringField("status", func(k KitchenSubCategory) string { return StatusLabel(active(k)) }),
		},
		Columns: []Column[KitchenSubCategory]{
			{Title: "Sub Category", Width: 24, Sort: "Kitchen_sub_category", Value: func(k KitchenSubCategory) string { return k.KitchenSubCategory }},
			{Title: "Category", Width: 20, Sort: "Kitchen_Category", Value: func(k KitchenSubCategory) string { return dash(k.KitchenCategory) }},
			{Title: "Group", Width: 20, Sort: "Kitchen_main_Group", Value: func(k KitchenSubCategory) string { return dash(k.KitchenMainGroup) }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(k KitchenSubCategory) string { return StatusLabel(active(k)) }},
		},
		Searchable:  []string{"Kitchen_sub_category"},
		DefaultSort: asc("Kitchen_sub_category"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsZero,
		Active:      active,
		Form: []FormField[KitchenSubCategory]{
			textInput("KitchenSubCategory", "Sub Category Name", func(k *KitchenSubCategory) *string { return &k.KitchenSubCategory }),
			lookupInput("KitchenCategoryID", "Kitchen Category", KitchenCategoriesLookup.Name,
				func(k *KitchenSubCategory) *ID { return &k.KitchenCategoryID }, func(k *KitchenSubCategory) *string { return &k.KitchenCategory }),
			lookupInput("KitchenMainGroupID", "Kitchen Group", KitchenGroupsLookup.Name,
				func(k *KitchenSubCategory) *ID { return &k.KitchenMainGroupID }, func(k *KitchenSubCategory) *string { return &k.KitchenMainGroup }),
			statusInput(ActiveIsZero, func(k *KitchenSubCategory) *Status { return &k.Status }),
		},
		Blank: func([]KitchenSubCategory) KitchenSubCategory {
			return KitchenSubCategory{Status: ActiveStatus(ActiveIsZero)}
		},
		Stamp: func(k *KitchenSubCategory, s Session) { stampHotel(&k.HotelID, s) },
	}
}

// KitchenGroups manages kitchen main groups. Active is status 0.
func KitchenGroups() Definition[KitchenMainGroup] {
	active := func(k KitchenMainGroup) bool { return k.Status.IsActive(ActiveIsZero) }
	return Definition[KitchenMainGroup]{
		Name:     "kitchen-groups",
		Title:    "Kitchen Groups",
		Singular: "kitchen group",
		Plural:   "kitchen groups",
		Resource: "KitchenMainGroup",
		Scope:    ScopeHotel,
		Key:      func(k KitchenMainGroup) ID { return k.KitchenMainGroupID },
		SetKey:   func(k *KitchenMainGroup, id ID) { k.KitchenMainGroupID = id },
		Fields: []listview.Field[KitchenMainGroup]{
			idField("kitchenmaingroupid", func(k KitchenMainGroup) ID { return k.KitchenMainGroupID }),
			stringField("Kitchen_main_Group", func(k KitchenMainGroup) string { return k.KitchenMainGroup }),
			stringField("status", func(k KitchenMainGroup) string { return StatusLabel(active(k)) }),
		},
		Columns: []Column[KitchenMainGroup]{
			{Title: "Group", Width: 28, Sort: "Kitchen_main_Group", Value: func(k KitchenMainGroup) string { return k.KitchenMainGroup }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(k KitchenMainGroup) string { return StatusLabel(active(k)) }},
		},
		Searchable:  []string{"Kitchen_main_Group"},
		DefaultSort: asc("Kitchen_main_Group"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsZero,
		Active:      active,
		Form: []FormField[KitchenMainGroup]{
			textInput("KitchenMainGroup", "Group Name", func(k *KitchenMainGroup) *string { return &k.KitchenMainGroup }),
			statusInput(ActiveIsZero, func(k *KitchenMainGroup) *Status { return &k.Status }),
		},
		Blank: func([]KitchenMainGroup) KitchenMainGroup { return KitchenMainGroup{Status: ActiveStatus(ActiveIsZero)} },
		Stamp: func(k *KitchenMainGroup, s Session) { stampHotel(&k.HotelID, s) },
	}
}

// ItemGroups manages item groups. Active is status 0; search waits 500ms.
func ItemGroups() Definition[ItemGroup] {
	active := func(g ItemGroup) bool { return g.Status.IsActive(ActiveIsZero) }
	return Definition[ItemGroup]{
		Name:     "item-groups",
		Title:    "Item Groups",
		Singular: "item group",
		Plural:   "item groups",
		Resource: "ItemGroup",
		Scope:    ScopeHotel,
		Key:      func(g ItemGroup) ID { return g.ItemGroupID },
		SetKey:   func(g *ItemGroup, id ID) { g.ItemGroupID = id },
		Fields: []listview.Field[ItemGroup]{
			idField("item_groupid", func(g ItemGroup) ID { return g.ItemGroupID }),
			stringField("itemgroupname", func(g ItemGroup) string { return g.ItemGroupName }),
			stringField("code", func(g ItemGroup) string { return g.Code }),
			stringField("Kitchen_Category", func(g ItemGroup) string { return g.KitchenCategory }),
			stringField("status", func(g ItemGroup) string { return StatusLabel(active(g)) }),
		},
		Columns: []Column[ItemGroup]{
			{Title: "Item Group", Width: 24, Sort: "itemgroupname", Value: func(g ItemGroup) string { return g.ItemGroupName }},
			{Title: "Code", Width: 8, Sort: "code", Value: func(g ItemGroup) string { return dash(g.Code) }},
			{Title: "Kitchen Category", Width: 20, Sort: "Kitchen_Category", Value: func(g ItemGroup) string { return dash(g.KitchenCategory) }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(g ItemGroup) string { return StatusLabel(active(g)) }},
		},
		Searchable:  []string{"itemgroupname", "code"},
		DefaultSort: asc("itemgroupname"),
		Debounce:    500 * time.Millisecond,
		Convention:  ActiveIsZero,
		Active:      active,
		Form: []FormField[ItemGroup]{
			textInput("ItemGroupName", "Item Group Name", func(g *ItemGroup) *string { return &g.ItemGroupName }),
			textInput("Code", "Code", func(g *ItemGroup) *string { return &g.Code }),
			lookupInput("KitchenCategoryID", "Kitchen Category", KitchenCategoriesLookup.Name,
				func(g *ItemGroup) *ID { return &g.KitchenCategoryID }, func(g *ItemGroup) *string { return &g.KitchenCategory }),
			statusInput(ActiveIsZero, func(g *ItemGroup) *Status { return &g.Status }),
		},
		Blank: func([]ItemGroup) ItemGroup { return ItemGroup{Status: ActiveStatus(ActiveIsZero)} },
		Stamp: func(g *ItemGroup, s Session) { stampHotel(&g.HotelID, s) },
	}
}

// ItemMainGroups manages item main groups. Active is status 0.
func ItemMainGroups() Definition[ItemMainGroup] {
	active := func(g ItemMainGroup) bool { return g.Status.IsActive(ActiveIsZero) }
	return Definition[ItemMainGroup]{
		Name:     "item-main-groups",
		Title:    "Item Main Groups",
		Singular: "item main group",
		Plural:   "item main groups",
		Resource: "ItemMainGroup",
		Scope:    ScopeHotel,
		Key:      func(g ItemMainGroup) ID { return g.ItemMainGroupID },
		SetKey:   func(g *ItemMainGroup, id ID) { g.ItemMainGroupID = id },
		Fields: []listview.Field[ItemMainGroup]{
			idField("item_maingroupid", func(g ItemMainGroup) ID { return g.ItemMainGroupID }),
			stringField("item_group_name", func(g ItemMainGroup) string { return g.ItemGroupName }),
			stringField("status", func(g ItemMainGroup) string { return StatusLabel(active(g)) }),
		},
		Columns: []Column[ItemMainGroup]{
			{Title: "Main Group", Width: 28, Sort: "item_group_name", Value: func(g ItemMainGroup) string { return g.ItemGroupName }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(g ItemMainGroup) string { return StatusLabel(active(g)) }},
		},
		Searchable:  []string{"item_group_name"},
		DefaultSort: asc("item_group_name"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsZero,
		Active:      active,
		Form: []FormField[ItemMainGroup]{
			textInput("ItemGroupName", "Main Group Name", func(g *ItemMainGroup) *string { return &g.ItemGroupName }),
			statusInput(ActiveIsZero, func(g *ItemMainGroup) *Status { return &g.Status }),
		},
		Blank: func([]ItemMainGroup) ItemMainGroup { return ItemMainGroup{Status: ActiveStatus(ActiveIsZero)} },
		Stamp: func(g *ItemMainGroup, s Session) { stampHotel(&g.HotelID, s) },
	}
}

// TaxGroups manages tax product groups. Active is status 1.
func TaxGroups() Definition[TaxGroup] {
	active := func(g TaxGroup) bool { return g.Status.IsActive(ActiveIsOne) }
	return Definition[TaxGroup]{
		Name:     "tax-groups",
		Title:    "Tax Product Groups",
		Singular: "tax group",
		Plural:   "tax groups",
		Resource: "taxgroup",
		Scope:    ScopeHotel,
		Key:      func(g TaxGroup) ID { return g.TaxGroupID },
		SetKey:   func(g *TaxGroup, id ID) { g.TaxGroupID = id },
		Fields: []listview.Field[TaxGroup]{
			idField("taxgroupid", func(g TaxGroup) ID { return g.TaxGroupID }),
			stringField("taxgroup_name", func(g TaxGroup) string { return g.Name }),
			stringField("hotel_name", func(g TaxGroup) string { return g.HotelName }),
			stringField("status", func(g TaxGroup) string { return StatusLabel(active(g)) }),
		},
		Columns: []Column[TaxGroup]{
			{Title: "Tax Group", Width: 24, Sort: "taxgroup_name", Value: func(g TaxGroup) string { return g.Name }},
			{Title: "Hotel", Width: 24, Sort: "hotel_name", Value: func(g TaxGroup) string { return dash(g.HotelName) }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(g TaxGroup) string { return StatusLabel(active(g)) }},
		},
		Searchable:  []string{"taxgroup_name", "hotel_name"},
		DefaultSort: asc("taxgroup_name"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsOne,
		Active:      active,
		Form: []FormField[TaxGroup]{
			textInput("Name", "Tax Group Name", func(g *TaxGroup) *string { return &g.Name }),
			statusInput(ActiveIsOne, func(g *TaxGroup) *Status { return &g.Status }),
		},
		Blank: func([]TaxGroup) TaxGroup { return TaxGroup{Status: ActiveStatus(ActiveIsOne)} },
		Stamp: func(g *TaxGroup, s Session) { stampHotel(&g.HotelID, s) },
	}
}

// Countries manages the country master. Active is status 0.
func Countries() Definition[Country] {
	active := func(c Country) bool { return c.Status.IsActive(ActiveIsZero) }
	return Definition[Country]{
		Name:     "countries",
		Title:    "Countries",
		Singular: "country",
		Plural:   "countries",
		Resource: "countries",
		Key:      func(c Country) ID { return c.CountryID },
		SetKey:   func(c *Country, id ID) { c.CountryID = id },
		Fields: []listview.Field[Country]{
			idField("countryid", func(c Country) ID { return c.CountryID }),
			stringField("country_name", func(c Country) string { return c.Name }),
			stringField("country_code", func(c Country) string { return c.Code }),
			stringField("country_capital", func(c Country) string { return c.Capital }),
			stringField("status", func(c Country) string { return StatusLabel(active(c)) }),
		},
		Columns: []Column[Country]{
			{Title: "Country", Width: 24, Sort: "country_name", Value: func(c Country) string { return c.Name }},
			{Title: "Code", Width: 6, Sort: "country_code", Value: func(c Country) string { return dash(c.Code) }},
			{Title: "Capital", Width: 20, Sort: "country_capital", Value: func(c Country) string { return dash(c.Capital) }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(c Country) string { return StatusLabel(active(c)) }},
		},
		Searchable:  []string{"country_name", "country_code", "country_capital"},
		DefaultSort: asc("country_name"),
		Debounce:    500 * time.Millisecond,
		Convention:  ActiveIsZero,
		Active:      active,
		Form: []FormField[Country]{
			textInput("Name", "Country Name", func(c *Country) *string { return &c.Name }),
			placeholder(textInput("Code", "Country Code", func(c *Country) *string { return &c.Code }), "IN"),
			textInput("Capital", "Capital", func(c *Country) *string { return &c.Capital }),
			statusInput(ActiveIsZero, func(c *Country) *Status { return &c.Status }),
		},
		Blank: func([]Country) Country { return Country{Status: ActiveStatus(ActiveIsZero)} },
	}
}

// States manages the state master. Active is status 0.
func States() Definition[State] {
	active := func(s State) bool { return s.Status.IsActive(ActiveIsZero) }
	return Definition[State]{
		Name:     "states",
		Title:    "States",
		Singular: "state",
		Plural:   "states",
		Resource: "states",
		Key:      func(s State) ID { return s.StateID },
		SetKey:   func(s *State, id ID) { s.StateID = id },
		Fields: []listview.Field[State]{
			idField("stateid", func(s State) ID { return s.StateID }),
			stringField("state_name", func(s State) string { return s.StateName }),
			stringField("state_code", func(s State) string { return s.StateCode }),
			stringField("state_capital", func(s State) string { return s.Capital }),
			stringField("country_name", func(s State) string { return s.CountryName }),
			stringField("status", func(s State) string { return StatusLabel(active(s)) }),
		},
		Columns: []Column[State]{
			{Title: "State", Width: 22, Sort: "state_name", Value: func(s State) string { return s.StateName }},
			{Title: "Code", Width: 6, Sort: "state_code", Value: func(s State) string { return dash(s.StateCode) }},
			{Title: "Capital", Width: 18, Sort: "state_capital", Value: func(s State) string { return dash(s.Capital) }},
			{Title: "Country", Width: 18, Sort: "country_name", Value: func(s State) string { return dash(s.CountryName) }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(s State) string { return StatusLabel(active(s)) }},
		},
		Searchable:  []string{"state_name", "state_code"},
		DefaultSort: asc("state_name"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsZero,
		Active:      active,
		Form: []FormField[State]{
			textInput("StateName", "State Name", func(s *State) *string { return &s.StateName }),
			placeholder(textInput("StateCode", "State Code", func(s *State) *string { return &s.StateCode }), "MH"),
			textInput("Capital", "Capital", func(s *State) *string { return &s.Capital }),
			lookupInput("CountryID", "Country", CountriesLookup.Name, func(s *State) *ID { return &s.CountryID }, func(s *State) *string { return &s.CountryName }),
			statusInput(ActiveIsZero, func(s *State) *Status { return &s.Status }),
		},
		Blank: func([]State) State { return State{Status: ActiveStatus(ActiveIsZero)} },
	}
}

// Cities manages the city master. Active is status 0.
func Cities() Definition[City] {
	active := func(c City) bool { return c.Status.IsActive(ActiveIsZero) }
	return Definition[City]{
		Name:     "cities",
		Title:    "Cities",
		Singular: "city",
		Plural:   "cities",
		Resource: "cities",
		Key:      func(c City) ID { return c.CityID },
		SetKey:   func(c *City, id ID) { c.CityID = id },
		Fields: []listview.Field[City]{
			idField("cityid", func(c City) ID { return c.CityID }),
			stringField("city_name", func(c City) string { return c.CityName }),
			stringField("city_Code", func(c City) string { return c.CityCode }),
			stringField("state_name", func(c City) string { return c.StateName }),
			stringField("iscoastal", func(c City) string { return yesNo(bool(c.Coastal)) }),
			stringField("status", func(c City) string { return StatusLabel(active(c)) }),
		},
		Columns: []Column[City]{
			{Title: "City", Width: 22, Sort: "city_name", Value: func(c City) string { return c.CityName }},
			{Title: "Code", Width: 8, Sort: "city_Code", Value: func(c City) string { return dash(c.CityCode) }},
			{Title: "State", Width: 18, Sort: "state_name", Value: func(c City) string { return dash(c.StateName) }},
			{Title: "Coastal", Width: 8, Sort: "iscoastal", Value: func(c City) string { return yesNo(bool(c.Coastal)) }},
			{Title: "Status", Width: 8, Sort: "status", Value: func(c City) string { return StatusLabel(active(c)) }},
		},
		Searchable:  []string{"city_name", "city_Code"},
		DefaultSort: asc("city_name"),
		Debounce:    DefaultDebounce,
		Convention:  ActiveIsZero,
		Active:      active,
		Form: []FormField[City]{
			textInput("CityName", "City Name", func(c *City) *string { return &c.CityName }),
			textInput("CityCode", "City Code", func(c *City) *string { return &c.CityCode }),
			lookupInput("StateID", "State", StatesLookup.Name, func(c *City) *ID { return &c.StateID }, func(c *City) *string { return &c.StateName }),
			boolInput("Coastal", "Coastal", func(c *City) *Flag { return &c.Coastal }),
			statusInput(ActiveIsZero, func(c *City) *Status { return &c.Status }),
		},
		Blank: func([]City) City { return City{Status: ActiveStatus(ActiveIsZero)} },
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func placeholder[T any](f FormField[T], p string) FormField[T] {
	f.Placeholder = p
	return f
}

func withParent[T any](f FormField[T], parent func(T) ID) FormField[T] {
	f.Parent = parent
	return f
}
