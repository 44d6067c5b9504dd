package devserver

import (
	"github.com/zjrosen/restodesk/internal/masters"
)

// route is one resource the server exposes.
type route struct {
	Resource string
	ListPath string
	KeyField string
	Scope    masters.Scope
	Singular string
	// Unique names a JSON field no two records in a scope may share
	// (compared case-insensitively), with its label for the error message.
	Unique      string
	UniqueLabel string
	// Ack answers a create with {"success":true,"id":N} instead of the
	// stored document, the way the ledger and menu endpoints do.
	Ack bool
}

func fromDef[T any](d masters.Definition[T], key string) route {
	return route{
		Resource: d.Resource,
		ListPath: d.ListResource(),
		KeyField: key,
		Scope:    d.Scope,
		Singular: d.Singular,
	}
}

func unique(r route, field, label string) route {
	r.Unique, r.UniqueLabel = field, label
	return r
}

func ack(r route) route {
	r.Ack = true
	return r
}

func routes() []route {
	return []route{
		ack(unique(fromDef(masters.Ledgers(), "LedgerId"), "LedgerNo", "Ledger No")),
		unique(fromDef(masters.AccountNatures(), "nature_id"), "accountnature", "Account nature"),
		unique(fromDef(masters.AccountTypes(), "AccID"), "AccName", "Account type"),
		unique(fromDef(masters.Customers(), "customerid"), "mobile", "Mobile number"),
		ack(unique(fromDef(masters.MenuItems(), "restitemid"), "item_no", "Item No")),
		unique(fromDef(masters.KitchenCategories(), "kitchencategoryid"), "Kitchen_Category", "Kitchen category"),
		unique(fromDef(masters.KitchenSubCategories(), "kitchensubcategoryid"), "Kitchen_sub_category", "Kitchen sub category"),
		unique(fromDef(masters.KitchenGroups(), "kitchenmaingroupid"), "Kitchen_main_Group", "Kitchen group"),
		unique(fromDef(masters.ItemGroups(), "item_groupid"), "itemgroupname", "Item group"),
		unique(fromDef(masters.ItemMainGroups(), "item_maingroupid"), "item_group_name", "Item main group"),
		unique(fromDef(masters.Units(), "unitid"), "unit_name", "Unit name"),
		unique(fromDef(masters.Tables(), "tableid"), "table_name", "Table name"),
		unique(fromDef(masters.TableDepartments(), "departmentid"), "department_name", "Department name"),
		unique(fromDef(masters.TaxGroups(), "taxgroupid"), "taxgroup_name", "Tax group"),
		fromDef(masters.TaxConfigs(), "id"),
		unique(fromDef(masters.Countries(), "countryid"), "country_name", "Country"),
		unique(fromDef(masters.States(), "stateid"), "state_name", "State"),
		unique(fromDef(masters.Cities(), "cityid"), "city_name", "City"),
	}
}
