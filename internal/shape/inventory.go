package shape

import (
	"github.com/supplylens/supplylens/internal/forecast"
	"github.com/supplylens/supplylens/internal/warehouse"
)

// BuildStartingInventory nets the non-sellable buckets out of the raw total
// and keys the result by ref. Listings without an ASIN key on the
// marketplace alone, mirroring how the snapshot reports channel-level stock.
// Duplicate refs accumulate.
func BuildStartingInventory(rows []warehouse.InventoryRow) forecast.ScalarTable {
	inventory := make(forecast.ScalarTable, len(rows))

	for _, row := range rows {
		ref := MakeRef(row.ASIN, "", row.Marketplace)
		if ref == "" {
			continue
		}
		sellable := row.TotalInventory -
			row.InWalmart -
			row.InTransferL3M -
			row.InFirstMile -
			row.InDirectToChannel
		inventory[ref] += sellable
	}
	return inventory
}
