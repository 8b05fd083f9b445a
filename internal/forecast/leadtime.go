package forecast

// applyLeadTimes augments a row with its total replenishment lead time:
// production + transport + channel buffer + fixed processing and safety
// buffers. Every lookup miss degrades to the book's documented default.
func (c *Calculator) applyLeadTimes(row *Row, attrs Attributes) {
	defaults := c.book.Defaults

	transport, ok := c.book.TransportDays(attrs.ShippingRegion, attrs.Marketplace)
	if !ok {
		transport = defaults.TransportDays
	}
	row.TransportLeadDays = transport

	row.ChannelBufferDays = c.book.ChannelBufferDays(attrs.ShippingRegion, attrs.Marketplace)

	production := attrs.ProductionLeadDays
	if production <= 0 {
		production = float64(defaults.ProductionDays)
	}
	row.ProductionLeadDays = production

	row.TotalLeadDays = production +
		float64(transport) +
		float64(row.ChannelBufferDays) +
		float64(defaults.ProcessingDays) +
		float64(defaults.SafetyDays)
}
