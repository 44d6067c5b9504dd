package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/restodesk/internal/masters"
)

func validCustomer() masters.Customer {
	return masters.Customer{
		Name:   "Asha Patil",
		Mobile: "9876543210",
		Mail:   "asha@example.com",
	}
}

func TestRecord_Valid(t *testing.T) {
	require.NoError(t, Record(validCustomer()))
	require.NoError(t, Record(&masters.Unit{UnitName: "Kg"}))
}

func TestRecord_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*masters.Customer)
		field  string
		msg    string
	}{
		{name: "required", mutate: func(c *masters.Customer) { c.Name = "" }, field: "Name", msg: "Customer Name is required"},
		{name: "letters only", mutate: func(c *masters.Customer) { c.Name = "R2D2" }, field: "Name", msg: "Customer Name may contain only letters and spaces"},
		{name: "phone", mutate: func(c *masters.Customer) { c.Mobile = "98765" }, field: "Mobile", msg: "Mobile must be a 10 digit number"},
		{name: "email", mutate: func(c *masters.Customer) { c.Mail = "asha@" }, field: "Mail", msg: "Email must be a valid email address"},
		{name: "pincode", mutate: func(c *masters.Customer) { c.Pincode = "4110" }, field: "Pincode", msg: "Pincode must be a 6 digit pincode"},
		{name: "pan", mutate: func(c *masters.Customer) { c.PanNo = "abcde1234f" }, field: "PanNo", msg: "PAN No must be a valid PAN (ABCDE1234F)"},
		{name: "gst", mutate: func(c *masters.Customer) { c.GstNo = "27ABCDE1234F1Z" }, field: "GstNo", msg: "GST No must be a valid GSTIN"},
		{name: "aadhar", mutate: func(c *masters.Customer) { c.AadharNo = "1234" }, field: "AadharNo", msg: "Aadhar No must be a 12 digit number"},
		{name: "date", mutate: func(c *masters.Customer) { c.Birthday = "12/01/1990" }, field: "Birthday", msg: "Birthday must be a date (YYYY-MM-DD)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(&c)

			err := Record(c)

			var verr *Error
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.field, verr.Field)
			require.Equal(t, tt.msg, verr.Message)
		})
	}
}

func TestRecord_OptionalFormatsMayBeBlank(t *testing.T) {
	c := validCustomer()
	c.Mail, c.Pincode, c.PanNo, c.GstNo = "", "", "", ""

	require.NoError(t, Record(c))
}

func TestRecord_ValidIdentifiers(t *testing.T) {
	c := validCustomer()
	c.PanNo = "ABCDE1234F"
	c.GstNo = "27ABCDE1234F1Z5"
	c.Pincode = "411001"
	c.AadharNo = "123412341234"
	c.Birthday = "1990-01-12"

	require.NoError(t, Record(c))
}

func TestAll_ReportsEveryFailureInOrder(t *testing.T) {
	l := masters.Ledger{LedgerNo: "x", MobileNo: "1", Status: 1}

	errs := All(l)

	require.Len(t, errs, 3)
	require.Equal(t, "LedgerNo", errs[0].Field)
	require.Equal(t, "digits", errs[0].Tag)
	require.Equal(t, "Name", errs[1].Field)
	require.Equal(t, "MobileNo", errs[2].Field)
}

func TestRecord_Numbers(t *testing.T) {
	tax := masters.TaxConfig{TaxName: "GST 5", Type: "CGST", TaxProductGroup: "Food", TaxPercentage: 120}

	err := Record(tax)

	require.EqualError(t, err, "Tax % must be at most 100")
}

func TestRecord_StatusOutOfRange(t *testing.T) {
	err := Record(masters.Unit{UnitName: "Kg", Status: 3})

	require.EqualError(t, err, "Status must be one of 0, 1")
}
