package dto

import (
	"storefront/internal/domain/catalogs/customer"
	"storefront/internal/domain/catalogs/itemgroup"
	"storefront/internal/domain/catalogs/lead"
	"storefront/internal/domain/pricing"
)

// CustomerRow is one customer list entry.
type CustomerRow struct {
	Name         string `json:"name"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
}

// FromCustomers projects customer rows.
func FromCustomers(customers []*customer.Customer) []CustomerRow {
	rows := make([]CustomerRow, len(customers))
	for i, c := range customers {
		rows[i] = CustomerRow{
			Name:         c.Code,
			CustomerName: c.CustomerName,
			Phone:        c.MobileNo,
		}
	}
	return rows
}

// ItemRow is one priced item of the storefront catalog.
type ItemRow struct {
	ItemCode     string `json:"item_code"`
	ItemName     string `json:"item_name"`
	ItemGroup    string `json:"item_group"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	UOM          string `json:"uom"`
	Rate         string `json:"rate"`
	RateCurrency string `json:"rate_currency"`
}

// FromPricedItems projects priced items. Order follows the input.
func FromPricedItems(items []pricing.PricedItem) []ItemRow {
	rows := make([]ItemRow, len(items))
	for i, it := range items {
		rows[i] = ItemRow{
			ItemCode:     it.Code,
			ItemName:     it.ItemName,
			ItemGroup:    it.ItemGroup,
			Description:  it.Description,
			Image:        it.Image,
			UOM:          it.UOM,
			Rate:         it.Rate.String(),
			RateCurrency: it.RateCurrency,
		}
	}
	return rows
}

// ItemGroupRow is one mobile-visible item group.
type ItemGroupRow struct {
	Name string `json:"name"`
}

// FromItemGroups projects group rows.
func FromItemGroups(groups []*itemgroup.ItemGroup) []ItemGroupRow {
	rows := make([]ItemGroupRow, len(groups))
	for i, g := range groups {
		rows[i] = ItemGroupRow{Name: g.Name}
	}
	return rows
}

// LeadRow is one lead list entry.
type LeadRow struct {
	Name     string `json:"name"`
	LeadName string `json:"lead_name"`
}

// FromLeads projects lead rows.
func FromLeads(leads []*lead.Lead) []LeadRow {
	rows := make([]LeadRow, len(leads))
	for i, l := range leads {
		rows[i] = LeadRow{Name: l.Code, LeadName: l.LeadName}
	}
	return rows
}
