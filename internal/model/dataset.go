package model

import "time"

// Dataset is a named, saved batch of item rows.
type Dataset struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	ItemCount int       `db:"item_count"`
	CreatedAt time.Time `db:"created_at"`
}

// DatasetItem is one stored row of a dataset. Position preserves the order
// the batch was submitted in.
type DatasetItem struct {
	ID          string  `db:"id"`
	DatasetID   string  `db:"dataset_id"`
	ItemID      string  `db:"item_id"`
	AnnualUsage float64 `db:"annual_usage"`
	UnitCost    float64 `db:"unit_cost"`
	LeadTime    float64 `db:"lead_time"`
	PastDemand  float64 `db:"past_demand"`
	Position    int     `db:"position"`
}

// ToItem strips storage fields, returning the analysis row.
func (d DatasetItem) ToItem() Item {
	return Item{
		ItemID:      d.ItemID,
		AnnualUsage: d.AnnualUsage,
		UnitCost:    d.UnitCost,
		LeadTime:    d.LeadTime,
		PastDemand:  d.PastDemand,
	}
}
