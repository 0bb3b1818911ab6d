package constants

// SectionKind is the semantic role assigned to a contiguous run of lines.
type SectionKind string

const (
	SectionHeader  SectionKind = "header"
	SectionVendor  SectionKind = "vendor"
	SectionItems   SectionKind = "items"
	SectionTotals  SectionKind = "totals"
	SectionPayment SectionKind = "payment"
	SectionFooter  SectionKind = "footer"
	SectionUnknown SectionKind = "unknown"
)

// DocumentFormat classifies the overall document.
type DocumentFormat string

const (
	FormatReceipt   DocumentFormat = "receipt"
	FormatInvoice   DocumentFormat = "invoice"
	FormatStatement DocumentFormat = "statement"
	FormatBill      DocumentFormat = "bill"
	FormatUnknown   DocumentFormat = "unknown"
)

// DocumentLayout classifies how text is arranged on the page.
type DocumentLayout string

const (
	LayoutColumnar DocumentLayout = "columnar"
	LayoutLinear   DocumentLayout = "linear"
	LayoutTabular  DocumentLayout = "tabular"
	LayoutMixed    DocumentLayout = "mixed"
)
