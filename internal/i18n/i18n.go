// Package i18n holds the message catalog for user-facing errors and ledger account labels.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text doubles as the key.
const (
	MsgInvalidRequest      = "Invalid request format"
	MsgValidation          = "The request failed validation: %s"
	MsgNotFound            = "The requested resource was not found"
	MsgDuplicate           = "The resource already exists"
	MsgConflict            = "The operation conflicts with the current state: %s"
	MsgInsufficientBalance = "Insufficient balance for this payment"
	MsgInternal            = "Internal server error"
	MsgUnauthorized        = "Unauthorized"

	labelTreasury      = "Treasury"
	labelBank          = "Bank account %s"
	labelCustomer      = "Customer %s"
	labelAgent         = "Agent %s"
	labelEmployee      = "Employee %s"
	labelExpense       = "Expense: %s"
	labelRevenue       = "Revenue: %s"
	labelShipping      = "Shipping expense"
	labelAgentFees     = "Agent fees expense"
	labelExportRev     = "Export clearance revenue"
	labelImportRev     = "Import clearance revenue"
	labelTransitRev    = "Transit clearance revenue"
	labelFreeZoneRev   = "Free zone clearance revenue"
	labelOtherRev      = "Other revenue"
	labelOpeningEquity = "Opening balance equity"
	labelOther         = "Other"
)

var supported = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(supported)

var arabic = map[string]string{
	MsgInvalidRequest:      "صيغة الطلب غير صحيحة",
	MsgValidation:          "فشل التحقق من الطلب: %s",
	MsgNotFound:            "العنصر المطلوب غير موجود",
	MsgDuplicate:           "العنصر موجود مسبقاً",
	MsgConflict:            "العملية تتعارض مع الحالة الحالية: %s",
	MsgInsufficientBalance: "الرصيد غير كافٍ لإتمام الدفع",
	MsgInternal:            "خطأ داخلي في الخادم",
	MsgUnauthorized:        "غير مصرح",
	labelTreasury:          "الخزينة",
	labelBank:              "الحساب البنكي %s",
	labelCustomer:          "العميل %s",
	labelAgent:             "الوكيل %s",
	labelEmployee:          "الموظف %s",
	labelExpense:           "مصروف: %s",
	labelRevenue:           "إيراد: %s",
	labelShipping:          "مصاريف الشحن",
	labelAgentFees:         "مصاريف رسوم الوكلاء",
	labelExportRev:         "إيرادات تخليص الصادر",
	labelImportRev:         "إيرادات تخليص الوارد",
	labelTransitRev:        "إيرادات تخليص الترانزيت",
	labelFreeZoneRev:       "إيرادات تخليص المنطقة الحرة",
	labelOtherRev:          "إيرادات أخرى",
	labelOpeningEquity:     "حقوق ملكية - أرصدة افتتاحية",
	labelOther:             "أخرى",
}

func init() {
	for key, text := range arabic {
		_ = message.SetString(language.Arabic, key, text)
	}
}

// Match returns the supported language closest to an Accept-Language header or a bare tag.
// Unparseable input falls back to fallback, or English when fallback is empty.
func Match(acceptLanguage, fallback string) language.Tag {
	if acceptLanguage == "" {
		acceptLanguage = fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// Printer returns a message printer for an Accept-Language header.
func Printer(acceptLanguage string) *message.Printer {
	return message.NewPrinter(Match(acceptLanguage, ""))
}
