package domain

// DocumentType selects the code prefix and sequence scope.
type DocumentType string

const (
	DocReceiptVoucher  DocumentType = "RECEIPT_VOUCHER"
	DocPaymentVoucher  DocumentType = "PAYMENT_VOUCHER"
	DocExportInvoice   DocumentType = "EXPORT_INVOICE"
	DocImportInvoice   DocumentType = "IMPORT_INVOICE"
	DocTransitInvoice  DocumentType = "TRANSIT_INVOICE"
	DocFreeZoneInvoice DocumentType = "FREE_ZONE_INVOICE"
)

var documentPrefixes = map[DocumentType]string{
	DocReceiptVoucher:  "RC",
	DocPaymentVoucher:  "PY",
	DocExportInvoice:   "EX",
	DocImportInvoice:   "IM",
	DocTransitInvoice:  "TR",
	DocFreeZoneInvoice: "FR",
}

// Prefix returns the code prefix, and false for unknown types.
func (d DocumentType) Prefix() (string, bool) {
	p, ok := documentPrefixes[d]
	return p, ok
}

// VoucherDocumentType maps a voucher type to its sequence.
func VoucherDocumentType(t VoucherType) DocumentType {
	if t == Receipt {
		return DocReceiptVoucher
	}
	return DocPaymentVoucher
}

// InvoiceType is the customs regime of an invoice.
type InvoiceType string

const (
	InvoiceExport   InvoiceType = "EXPORT"
	InvoiceImport   InvoiceType = "IMPORT"
	InvoiceTransit  InvoiceType = "TRANSIT"
	InvoiceFreeZone InvoiceType = "FREE_ZONE"
)

// DocumentType maps an invoice type to its sequence, and false for unknown types.
func (t InvoiceType) DocumentType() (DocumentType, bool) {
	switch t {
	case InvoiceExport:
		return DocExportInvoice, true
	case InvoiceImport:
		return DocImportInvoice, true
	case InvoiceTransit:
		return DocTransitInvoice, true
	case InvoiceFreeZone:
		return DocFreeZoneInvoice, true
	}
	return "", false
}

// RevenueLabel is the revenue account label for the invoice type.
func (t InvoiceType) RevenueLabel() string {
	switch t {
	case InvoiceExport:
		return "export"
	case InvoiceImport:
		return "import"
	case InvoiceTransit:
		return "transit"
	case InvoiceFreeZone:
		return "free_zone"
	}
	return "other"
}
