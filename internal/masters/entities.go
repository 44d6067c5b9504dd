package masters

// Ledger is an account ledger.
type Ledger struct {
	LedgerID           ID     `json:"LedgerId,omitempty"`
	LedgerNo           Text   `json:"LedgerNo" validate:"required,digits" label:"Ledger No"`
	Name               string `json:"Name" validate:"required,max=100" label:"Name"`
	MarathiName        string `json:"MarathiName,omitempty" validate:"max=100" label:"Marathi Name"`
	Address            string `json:"address" validate:"max=250" label:"Address"`
	StateID            ID     `json:"stateid,omitempty" label:"State"`
	State              string `json:"state,omitempty"`
	CityID             ID     `json:"cityid,omitempty" label:"City"`
	City               string `json:"city,omitempty"`
	MobileNo           Text   `json:"MobileNo" validate:"omitempty,phone" label:"Mobile No"`
	PhoneNo            Text   `json:"PhoneNo,omitempty" validate:"omitempty,digits,max=15" label:"Phone No"`
	GstNo              string `json:"GstNo,omitempty" validate:"omitempty,gst" label:"GST No"`
	PanNo              string `json:"PanNo,omitempty" validate:"omitempty,pan" label:"PAN No"`
	OpeningBalance     Text   `json:"OpeningBalance" validate:"omitempty,numeric" label:"Opening Balance"`
	OpeningBalanceDate string `json:"OpeningBalanceDate,omitempty" validate:"omitempty,datetime=2006-01-02" label:"Opening Balance Date"`
	AccountTypeID      ID     `json:"AccountTypeId,omitempty" label:"Account Type"`
	AccountType        string `json:"AccountType"`
	Status             Status `json:"Status" validate:"oneof=0 1" label:"Status"`
	HotelID            ID     `json:"hotelid,omitempty"`
}

// AccountNature is a top-level account classification scoped to a company
// and financial year.
type AccountNature struct {
	NatureID      ID     `json:"nature_id,omitempty"`
	AccountNature string `json:"accountnature" validate:"required,max=100" label:"Account Nature"`
	Status        Status `json:"status" validate:"oneof=0 1" label:"Status"`
	CompanyID     ID     `json:"companyid,omitempty"`
	YearID        ID     `json:"yearid,omitempty"`
}

// AccountType groups ledgers under an account nature.
type AccountType struct {
	AccID     ID     `json:"AccID,omitempty"`
	AccName   string `json:"AccName" validate:"required,max=100" label:"Account Type"`
	UnderID   ID     `json:"UnderID,omitempty" label:"Under"`
	NatureOfC ID     `json:"NatureOfC,omitempty" validate:"required" label:"Nature"`
	Status    Status `json:"status" validate:"oneof=0 1" label:"Status"`
	HotelID   ID     `json:"hotelid,omitempty"`
}

// Customer is a restaurant customer profile.
type Customer struct {
	CustomerID   ID     `json:"customerid,omitempty"`
	Name         string `json:"name" validate:"required,alphaspace,max=100" label:"Customer Name"`
	CountryCode  string `json:"countryCode" validate:"omitempty,max=5" label:"Country Code"`
	Mobile       Text   `json:"mobile" validate:"required,phone" label:"Mobile"`
	Mail         string `json:"mail" validate:"omitempty,email" label:"Email"`
	CityID       ID     `json:"cityid" label:"City"`
	CityName     string `json:"city_name"`
	Address1     string `json:"address1" validate:"max=250" label:"Address 1"`
	Address2     string `json:"address2,omitempty" validate:"max=250" label:"Address 2"`
	StateID      ID     `json:"stateid" label:"State"`
	StateName    string `json:"state_name"`
	Pincode      Text   `json:"pincode,omitempty" validate:"omitempty,pincode" label:"Pincode"`
	GstNo        string `json:"gstNo,omitempty" validate:"omitempty,gst" label:"GST No"`
	Fssai        Text   `json:"fssai,omitempty" validate:"omitempty,digits,len=14" label:"FSSAI"`
	PanNo        string `json:"panNo,omitempty" validate:"omitempty,pan" label:"PAN No"`
	AadharNo     Text   `json:"aadharNo,omitempty" validate:"omitempty,aadhar" label:"Aadhar No"`
	Birthday     string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02" label:"Birthday"`
	Anniversary  string `json:"anniversary,omitempty" validate:"omitempty,datetime=2006-01-02" label:"Anniversary"`
	CreateWallet bool   `json:"createWallet,omitempty"`
}

// KitchenCategory groups menu items by kitchen.
type KitchenCategory struct {
	KitchenCategoryID      ID     `json:"kitchencategoryid,omitempty"`
	KitchenCategory        string `json:"Kitchen_Category" validate:"required,max=100" label:"Category Name"`
	Description            string `json:"Description" validate:"max=250" label:"Description"`
	AlternativeName        string `json:"alternative_category_name,omitempty" validate:"max=100" label:"Alternative Name"`
	AlternativeDescription string `json:"alternative_category_Description,omitempty" validate:"max=250" label:"Alternative Description"`
	CategoryColor          string `json:"categorycolor,omitempty" validate:"omitempty,hexcolor" label:"Color"`
	Status                 Status `json:"status" validate:"oneof=0 1" label:"Status"`
	HotelID                ID     `json:"hotelid,omitempty"`
}

// Unit is a unit of measure.
type Unit struct {
	UnitID   ID     `json:"unitid,omitempty"`
	UnitName string `json:"unit_name" validate:"required,max=50" label:"Unit Name"`
	Status   Status `json:"status" validate:"oneof=0 1" label:"Status"`
	HotelID  ID     `json:"hotel_id,omitempty"`
}

// Table is a dining table in an outlet.
type Table struct {
	TableID    ID     `json:"tableid,omitempty"`
	TableName  string `json:"table_name" validate:"required,max=50" label:"Table Name"`
	HotelName  string `json:"hotel_name,omitempty"`
	OutletName string `json:"outlet_name" validate:"max=100" label:"Outlet"`
	OutletID   ID     `json:"outletid,omitempty" label:"Outlet"`
	HotelID    ID     `json:"hotelid,omitempty"`
	Status     Status `json:"status" validate:"oneof=0 1" label:"Status"`
}

// TableDepartment groups tables for service and tax purposes.
type TableDepartment struct {
	DepartmentID   ID     `json:"departmentid,omitempty"`
	DepartmentName string `json:"department_name" validate:"required,max=100" label:"Department Name"`
	HotelName      string `json:"hotel_name,omitempty"`
	OutletName     string `json:"outlet_name" validate:"max=100" label:"Outlet"`
	OutletID       ID     `json:"outletid,omitempty" label:"Outlet"`
	HotelID        ID     `json:"hotelid,omitempty"`
	TaxGroupID     ID     `json:"taxgroupid,omitempty" label:"Tax Group"`
	Status         Status `json:"status" validate:"oneof=0 1" label:"Status"`
}

// TaxConfig is a tax rate applied to a product group.
type TaxConfig struct {
	ID              ID      `json:"id,omitempty"`
	TaxName         string  `json:"taxName" validate:"required,max=100" label:"Tax Name"`
	Type            string  `json:"type" validate:"required,max=50" label:"Type"`
	TaxProductGroup string  `json:"taxProductGroup" validate:"required,max=100" label:"Tax Product Group"`
	BrandName       string  `json:"brandName" validate:"max=100" label:"Brand"`
	TaxPercentage   float64 `json:"taxPercentage" validate:"gte=0,lte=100" label:"Tax %"`
	IsActive        bool    `json:"isActive"`
}

// MenuItem is a sellable menu item.
type MenuItem struct {
	RestItemID           ID     `json:"restitemid,omitempty"`
	ItemNo               Text   `json:"item_no" validate:"required,digits" label:"Item No"`
	ItemName             string `json:"item_name" validate:"required,max=100" label:"Item Name"`
	PrintName            string `json:"print_name" validate:"max=100" label:"Print Name"`
	ShortName            string `json:"short_name" validate:"max=50" label:"Short Name"`
	KitchenCategoryID    ID     `json:"kitchen_category_id,omitempty" label:"Kitchen Category"`
	KitchenSubCategoryID ID     `json:"kitchen_sub_category_id,omitempty" label:"Kitchen Sub Category"`
	KitchenMainGroupID   ID     `json:"kitchen_main_group_id,omitempty" label:"Kitchen Group"`
	ItemGroupID          ID     `json:"item_group_id,omitempty" label:"Item Group"`
	ItemGroupName        string `json:"itemgroupname,omitempty"`
	ItemMainGroupID      ID     `json:"item_main_group_id,omitempty" label:"Item Main Group"`
	StockUnit            ID     `json:"stock_unit,omitempty" label:"Stock Unit"`
	Price                Text   `json:"price" validate:"required,numeric" label:"Price"`
	TaxGroupID           ID     `json:"taxgroupid,omitempty" label:"Tax Group"`
	HSNCode              Text   `json:"item_hsncode,omitempty" validate:"omitempty,digits,max=8" label:"HSN Code"`
	Status               Status `json:"status" validate:"oneof=0 1" label:"Status"`
	HotelID              ID     `json:"hotelid,omitempty"`
}

// KitchenSubCategory narrows a kitchen category.
type KitchenSubCategory struct {
	KitchenSubCategoryID ID     `json:"kitchensubcategoryid,omitempty"`
	KitchenSubCategory   string `json:"Kitchen_sub_category" validate:"required,max=100" label:"Sub Category Name"`
	KitchenCategoryID    ID     `json:"kitchencategoryid,omitempty" validate:"required" label:"Kitchen Category"`
	KitchenCategory      string `json:"Kitchen_Category,omitempty"`
	KitchenMainGroupID   ID     `json:"kitchenmaingroupid,omitempty" label:"Kitchen Group"`
	KitchenMainGroup     string `json:"Kitchen_main_Group,omitempty"`
	Status               Status `json:"status" validate:"oneof=0 1" label:"Status"`
	HotelID              ID     `json:"hotelid,omitempty"`
}

// KitchenMainGroup is the top level of the kitchen hierarchy.
type KitchenMainGroup struct {
	KitchenMainGroupID ID     `json:"kitchenmaingroupid,omitempty"`
	KitchenMainGroup   string `json:"Kitchen_main_Group" validate:"required,max=100" label:"Group Name"`
	Status             Status `json:"status" validate:"oneof=0 1" label:"Status"`
	HotelID            ID     `json:"hotelid,omitempty"`
}

// ItemGroup groups menu items for reporting.
type ItemGroup struct {
	ItemGroupID       ID     `json:"item_groupid,omitempty"`
	ItemGroupName     string `json:"itemgroupname" validate:"required,max=100" label:"Item Group Name"`
	Code              string `json:"code" validate:"max=20" label:"Code"`
	KitchenCategoryID ID     `json:"kitchencategoryid,omitempty" label:"Kitchen Category"`
	KitchenCategory   string `json:"Kitchen_Category,omitempty"`
	Status            Status `json:"status" validate:"oneof=0 1" label:"Status"`
	HotelID           ID     `json:"hotelid,omitempty"`
}

// ItemMainGroup is the top level of the item group hierarchy.
type ItemMainGroup struct {
	ItemMainGroupID ID     `json:"item_maingroupid,omitempty"`
	ItemGroupName   string `json:"item_group_name" validate:"required,max=100" label:"Main Group Name"`
	Status          Status `json:"status" validate:"oneof=0 1" label:"Status"`
	HotelID         ID     `json:"hotelid,omitempty"`
}

// TaxGroup is a tax product group referenced by menu items and departments.
type TaxGroup struct {
	TaxGroupID ID     `json:"taxgroupid,omitempty"`
	Name       string `json:"taxgroup_name" validate:"required,max=100" label:"Tax Group Name"`
	HotelName  string `json:"hotel_name,omitempty"`
	Status     Status `json:"status" validate:"oneof=0 1" label:"Status"`
	HotelID    ID     `json:"hotelid,omitempty"`
}

// Country is a country master row.
type Country struct {
	CountryID ID     `json:"countryid,omitempty"`
	Name      string `json:"country_name" validate:"required,alphaspace,max=100" label:"Country Name"`
	Code      string `json:"country_code" validate:"max=5" label:"Country Code"`
	Capital   string `json:"country_capital" validate:"max=100" label:"Capital"`
	Status    Status `json:"status" validate:"oneof=0 1" label:"Status"`
}

// State is a state master row; it also backs the state selector.
type State struct {
	StateID     ID     `json:"stateid,omitempty"`
	StateName   string `json:"state_name" validate:"required,alphaspace,max=100" label:"State Name"`
	StateCode   string `json:"state_code" validate:"max=5" label:"State Code"`
	Capital     string `json:"state_capital" validate:"max=100" label:"Capital"`
	CountryID   ID     `json:"countryid,omitempty" label:"Country"`
	CountryName string `json:"country_name,omitempty"`
	Status      Status `json:"status" validate:"oneof=0 1" label:"Status"`
}

// City is a city master row; it also backs the city selector.
type City struct {
	CityID    ID     `json:"cityid,omitempty"`
	CityName  string `json:"city_name" validate:"required,alphaspace,max=100" label:"City Name"`
	CityCode  string `json:"city_Code" validate:"max=10" label:"City Code"`
	StateID   ID     `json:"stateid,omitempty" validate:"required" label:"State"`
	StateName string `json:"state_name,omitempty"`
	Coastal   Flag   `json:"iscoastal"`
	Status    Status `json:"status" validate:"oneof=0 1" label:"Status"`
}
