// Package lookup holds the localized reference tables (auction and settlement statuses).
// Every entry carries its translations inline instead of a parallel table per entity.
package lookup

import (
	"sort"

	"agri-auction/internal/models"
)

const DefaultLanguage = "en"

// Kind names a reference table
type Kind string

const (
	KindAuctionStatus    Kind = "auction-statuses"
	KindSettlementStatus Kind = "settlement-statuses"
	KindBidStatus        Kind = "bid-statuses"
)

// Translation is the localized text for one language
type Translation struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Translatable is a coded entry with per-language text
type Translatable struct {
	Code         string                 `json:"code"`
	Translations map[string]Translation `json:"-"`
}

// In returns the translation for lang, falling back to the default language
func (t Translatable) In(lang string) (Translation, string) {
	if tr, ok := t.Translations[lang]; ok {
		return tr, lang
	}
	return t.Translations[DefaultLanguage], DefaultLanguage
}

// Entry is the localized view returned to clients
type Entry struct {
	Code         string `json:"code"`
	LanguageCode string `json:"language_code"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
}

// Catalog is an immutable set of reference tables
type Catalog struct {
	tables map[Kind][]Translatable
}

// NewCatalog returns the built-in reference tables
func NewCatalog() *Catalog {
	return &Catalog{tables: map[Kind][]Translatable{
		KindAuctionStatus: {
			entry(string(models.AuctionStatusUpcoming), "Upcoming", "Scheduled, bidding not yet open", "قادم", "Programmée"),
			entry(string(models.AuctionStatusActive), "Active", "Open for bidding", "نشط", "Active"),
			entry(string(models.AuctionStatusClosed), "Closed", "Bidding ended", "مغلق", "Clôturée"),
			entry(string(models.AuctionStatusCancelled), "Cancelled", "Withdrawn by seller or admin", "ملغى", "Annulée"),
		},
		KindSettlementStatus: {
			entry(string(models.SettlementStatusPendingPayment), "Pending payment", "Awaiting winner payment", "بانتظار الدفع", "En attente de paiement"),
			entry(string(models.SettlementStatusPaid), "Paid", "Winner charged", "مدفوع", "Payée"),
			entry(string(models.SettlementStatusSettled), "Settled", "Seller paid out", "تمت التسوية", "Réglée"),
		},
		KindBidStatus: {
			entry(string(models.BidStatusActiveHighest), "Highest", "Currently winning", "الأعلى", "La plus haute"),
			entry(string(models.BidStatusOutbid), "Outbid", "Exceeded by a later bid", "تم تجاوزه", "Surenchérie"),
			entry(string(models.BidStatusWinning), "Winning", "Won the auction", "فائز", "Gagnante"),
		},
	}}
}

func entry(code, enName, enDesc, arName, frName string) Translatable {
	return Translatable{
		Code: code,
		Translations: map[string]Translation{
			"en": {Name: enName, Description: enDesc},
			"ar": {Name: arName},
			"fr": {Name: frName},
		},
	}
}

// Kinds lists the available tables
func (c *Catalog) Kinds() []Kind {
	out := make([]Kind, 0, len(c.tables))
	for k := range c.tables {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// List returns a table localized to lang; ok is false for an unknown kind
func (c *Catalog) List(kind Kind, lang string) ([]Entry, bool) {
	table, ok := c.tables[kind]
	if !ok {
		return nil, false
	}
	if lang == "" {
		lang = DefaultLanguage
	}
	out := make([]Entry, 0, len(table))
	for _, t := range table {
		tr, used := t.In(lang)
		out = append(out, Entry{Code: t.Code, LanguageCode: used, Name: tr.Name, Description: tr.Description})
	}
	return out, true
}

// Label returns the localized name of one code, or the code itself when unknown
func (c *Catalog) Label(kind Kind, code, lang string) string {
	for _, t := range c.tables[kind] {
		if t.Code == code {
			tr, _ := t.In(lang)
			return tr.Name
		}
	}
	return code
}
