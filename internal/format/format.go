package format

// Wire-format constants for the AAMVA DL/ID text layout.
//
// Payload shape:
//
//	@ <sep1> <sep2> <sep3> ANSI  <iin:6><ver:2><jur:2><entries:2>
//	[ <type:2><offset:4><length:4> ] * entries
//	<subfile blocks at their declared offsets, each ending in sep3>
const (
	// LeadIn is the compliance indicator opening every payload.
	LeadIn = '@'

	// FileType is the literal following the three separator characters.
	FileType = "ANSI "

	IINLen          = 6 // issuer identification number
	VersionLen      = 2 // AAMVA version number
	JurisdictionLen = 2 // jurisdiction version number
	EntryCountLen   = 2 // number of subfile designators

	// Subfile designator: <type:2><offset:4><length:4>.
	TypeLen       = 2
	OffsetLen     = 4
	LengthLen     = 4
	DesignatorLen = TypeLen + OffsetLen + LengthLen

	// ElementIDLen is the length of a record key within a subfile.
	ElementIDLen = 3

	// SubfilePrefixLen is the type/repeat marker opening each subfile block,
	// skipped before record extraction.
	SubfilePrefixLen = 2
)
