package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyLeadTimes_KnownRoute(t *testing.T) {
	c := NewCalculator(nil, testNow)

	row := &Row{}
	attrs := Attributes{
		ShippingRegion:     "CN",
		Marketplace:        "US",
		ProductionLeadDays: 60,
	}

	c.applyLeadTimes(row, attrs)

	assert.Equal(t, 39, row.TransportLeadDays)
	assert.Equal(t, 39, row.ChannelBufferDays)
	assert.Equal(t, 60.0, row.ProductionLeadDays)
	// 60 production + 39 transport + 39 channel + 15 processing + 30 safety.
	assert.Equal(t, 183.0, row.TotalLeadDays)
}

func TestApplyLeadTimes_UnknownRouteFallsBack(t *testing.T) {
	c := NewCalculator(nil, testNow)

	row := &Row{}
	attrs := Attributes{
		ShippingRegion:     "ZZ",
		Marketplace:        "BR",
		ProductionLeadDays: 10,
	}

	c.applyLeadTimes(row, attrs)

	assert.Equal(t, 45, row.TransportLeadDays)
	assert.Equal(t, 36, row.ChannelBufferDays)
	assert.Equal(t, 10.0+45+36+15+30, row.TotalLeadDays)
}

func TestApplyLeadTimes_DomesticSkipsChannelBuffer(t *testing.T) {
	c := NewCalculator(nil, testNow)

	row := &Row{}
	attrs := Attributes{
		ShippingRegion:     "US",
		Marketplace:        "US",
		ProductionLeadDays: 30,
	}

	c.applyLeadTimes(row, attrs)

	assert.Equal(t, 7, row.TransportLeadDays)
	assert.Equal(t, 0, row.ChannelBufferDays)
	assert.Equal(t, 30.0+7+0+15+30, row.TotalLeadDays)
}

func TestApplyLeadTimes_MissingProductionLeadDefaults(t *testing.T) {
	c := NewCalculator(nil, testNow)

	row := &Row{}
	attrs := Attributes{
		ShippingRegion: "CN",
		Marketplace:    "EU",
	}

	c.applyLeadTimes(row, attrs)

	assert.Equal(t, 45.0, row.ProductionLeadDays)
	assert.Equal(t, 42, row.TransportLeadDays)
	assert.Equal(t, 40, row.ChannelBufferDays)
	assert.Equal(t, 45.0+42+40+15+30, row.TotalLeadDays)
}
