package aamva

// elementNames maps the common AAMVA data element IDs to display names.
// The table is labeling only; the parser never validates element semantics.
var elementNames = map[string]string{
	"DAA": "Full Name",
	"DAC": "First Name",
	"DAD": "Middle Name(s)",
	"DAG": "Street Address",
	"DAH": "Street Address 2",
	"DAI": "City",
	"DAJ": "Jurisdiction Code",
	"DAK": "Postal Code",
	"DAQ": "Customer ID Number",
	"DAR": "License Classification Code",
	"DAS": "License Restriction Code",
	"DAT": "License Endorsements Code",
	"DAU": "Height",
	"DAW": "Weight (pounds)",
	"DAX": "Weight (kilograms)",
	"DAY": "Eye Color",
	"DAZ": "Hair Color",
	"DBA": "Expiration Date",
	"DBB": "Date of Birth",
	"DBC": "Sex",
	"DBD": "Issue Date",
	"DBE": "Issue Timestamp",
	"DBF": "Number of Duplicates",
	"DBG": "Medical Indicator Codes",
	"DBH": "Organ Donor Indicator",
	"DBI": "Non-Resident Indicator",
	"DBJ": "Unique Customer Identifier",
	"DBK": "Social Security Number",
	"DBN": "Full Name",
	"DCA": "Vehicle Class",
	"DCB": "Restriction Codes",
	"DCD": "Endorsement Codes",
	"DCF": "Document Discriminator",
	"DCG": "Country of Issuance",
	"DCH": "Federal Commercial Vehicle Codes",
	"DCI": "Place of Birth",
	"DCJ": "Audit Information",
	"DCK": "Inventory Control Number",
	"DCS": "Family Name",
	"DCT": "Given Names",
	"DCU": "Name Suffix",
	"DDA": "Compliance Type",
	"DDB": "Card Revision Date",
	"DDC": "HazMat Endorsement Expiration Date",
	"DDD": "Limited Duration Document Indicator",
	"DDE": "Family Name Truncation",
	"DDF": "First Name Truncation",
	"DDG": "Middle Name Truncation",
	"DDH": "Under 18 Until",
	"DDI": "Under 19 Until",
	"DDJ": "Under 21 Until",
	"DDK": "Organ Donor Indicator",
	"DDL": "Veteran Indicator",
}

// ElementName returns the display name for a 3-letter AAMVA data element ID.
// ok is false for IDs outside the table (jurisdiction-specific ZAA-ZZZ
// elements, for instance), in which case callers typically show the raw ID.
func ElementName(id string) (string, bool) {
	name, ok := elementNames[id]
	return name, ok
}

// ElementIDs returns every element ID in the table, in no particular order.
func ElementIDs() []string {
	ids := make([]string, 0, len(elementNames))
	for id := range elementNames {
		ids = append(ids, id)
	}
	return ids
}
