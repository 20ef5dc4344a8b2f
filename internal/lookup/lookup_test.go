package lookup

import (
	"testing"

	"agri-auction/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCatalog_List(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name     string
		kind     Kind
		lang     string
		wantOK   bool
		wantLen  int
		wantLang string
	}{
		{name: "english_default", kind: KindAuctionStatus, lang: "", wantOK: true, wantLen: 4, wantLang: "en"},
		{name: "arabic", kind: KindSettlementStatus, lang: "ar", wantOK: true, wantLen: 3, wantLang: "ar"},
		{name: "unknown_language_falls_back", kind: KindBidStatus, lang: "sw", wantOK: true, wantLen: 3, wantLang: "en"},
		{name: "unknown_kind", kind: Kind("product-grades"), lang: "en", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries, ok := c.List(tc.kind, tc.lang)
			require.Equal(t, tc.wantOK, ok)
			if !ok {
				return
			}
			require.Len(t, entries, tc.wantLen)
			for _, e := range entries {
				require.Equal(t, tc.wantLang, e.LanguageCode)
				require.NotEmpty(t, e.Name)
			}
		})
	}
}

func TestCatalog_Label(t *testing.T) {
	c := NewCatalog()
	require.Equal(t, "Pending payment", c.Label(KindSettlementStatus, string(models.SettlementStatusPendingPayment), "en"))
	require.Equal(t, "Clôturée", c.Label(KindAuctionStatus, string(models.AuctionStatusClosed), "fr"))
	require.Equal(t, "MYSTERY", c.Label(KindAuctionStatus, "MYSTERY", "en"))
	require.Len(t, c.Kinds(), 3)
}
