// internal/models/platform_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsePlatform(t *testing.T) {
	cases := []struct {
		in   string
		want Platform
	}{
		{"amazon", PlatformAmazon},
		{"Amazon", PlatformAmazon},
		{"  FLIPKART  ", PlatformFlipkart},
		{"myntra", PlatformMyntra},
		{"meesho", PlatformMeesho},
		{"ebay", PlatformUnknown},
		{"", PlatformUnknown},
		{"amazon.in", PlatformUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePlatform(tc.in), "input %q", tc.in)
	}
}

func TestKnownPlatformsExcludesUnknown(t *testing.T) {
	for _, p := range KnownPlatforms() {
		assert.NotEqual(t, PlatformUnknown, p)
	}
	assert.Len(t, KnownPlatforms(), 4)
}

func TestListingPlatformTag(t *testing.T) {
	listing := ProductListing{Platform: "Flipkart"}
	assert.Equal(t, PlatformFlipkart, listing.PlatformTag())

	listing.Platform = "shopify"
	assert.Equal(t, PlatformUnknown, listing.PlatformTag())
}

func TestFreeShipping(t *testing.T) {
	listing := ProductListing{}
	assert.True(t, listing.FreeShipping())

	zero := NewMoney(decimal.Zero)
	listing.ShippingCost = &zero
	assert.True(t, listing.FreeShipping())

	cost := NewMoney(decimal.RequireFromString("49.00"))
	listing.ShippingCost = &cost
	assert.False(t, listing.FreeShipping())
}

func TestListingPriceMarshalsAsString(t *testing.T) {
	listing := ProductListing{Price: NewMoney(decimal.RequireFromString("999.99"))}

	data, err := json.Marshal(listing)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"price":"999.99"`)
}

func TestMoneyKeepsTrailingZeros(t *testing.T) {
	cases := map[string]string{
		"1000.00": `"1000.00"`,
		"1000.50": `"1000.50"`,
		"0":       `"0.00"`,
		"999.9":   `"999.90"`,
	}

	for in, want := range cases {
		data, err := json.Marshal(NewMoney(decimal.RequireFromString(in)))
		assert.NoError(t, err)
		assert.Equal(t, want, string(data), "input %s", in)
	}
}

func TestMoneyUnmarshalsQuotedStrings(t *testing.T) {
	var m Money
	assert.NoError(t, json.Unmarshal([]byte(`"1299.99"`), &m))
	assert.True(t, m.Equal(decimal.RequireFromString("1299.99")))
}
