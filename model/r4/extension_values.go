package r4

// extensionValueTypes names the types an extension value can have.
var extensionValueTypes = []string{
	"base64Binary",
	"boolean",
	"canonical",
	"code",
	"date",
	"dateTime",
	"decimal",
	"id",
	"instant",
	"integer",
	"markdown",
	"oid",
	"positiveInt",
	"string",
	"time",
	"unsignedInt",
	"uri",
	"url",
	"uuid",
	"Annotation",
	"CodeableConcept",
	"Coding",
	"ContactDetail",
	"ContactPoint",
	"Duration",
	"Identifier",
	"Meta",
	"Money",
	"Period",
	"Quantity",
	"Range",
	"Reference",
	"Timing",
	"UsageContext",
}

func (r *Base64Binary) isExtensionValue()    {}
func (r *Boolean) isExtensionValue()         {}
func (r *Canonical) isExtensionValue()       {}
func (r *Code) isExtensionValue()            {}
func (r *Date) isExtensionValue()            {}
func (r *DateTime) isExtensionValue()        {}
func (r *Decimal) isExtensionValue()         {}
func (r *Id) isExtensionValue()              {}
func (r *Instant) isExtensionValue()         {}
func (r *Integer) isExtensionValue()         {}
func (r *Markdown) isExtensionValue()        {}
func (r *Oid) isExtensionValue()             {}
func (r *PositiveInt) isExtensionValue()     {}
func (r *String) isExtensionValue()          {}
func (r *Time) isExtensionValue()            {}
func (r *UnsignedInt) isExtensionValue()     {}
func (r *Uri) isExtensionValue()             {}
func (r *Url) isExtensionValue()             {}
func (r *Uuid) isExtensionValue()            {}
func (r *Annotation) isExtensionValue()      {}
func (r *CodeableConcept) isExtensionValue() {}
func (r *Coding) isExtensionValue()          {}
func (r *ContactDetail) isExtensionValue()   {}
func (r *ContactPoint) isExtensionValue()    {}
func (r *Duration) isExtensionValue()        {}
func (r *Identifier) isExtensionValue()      {}
func (r *Meta) isExtensionValue()            {}
func (r *Money) isExtensionValue()           {}
func (r *Period) isExtensionValue()          {}
func (r *Quantity) isExtensionValue()        {}
func (r *Range) isExtensionValue()           {}
func (r *Reference) isExtensionValue()       {}
func (r *Timing) isExtensionValue()          {}
func (r *UsageContext) isExtensionValue()    {}
