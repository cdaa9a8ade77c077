package dto

import (
	"storefront/internal/domain/catalogs/company"
	"storefront/pkg/moneyfmt"
)

// CompanyProfile is the fixed company projection for the about screen.
type CompanyProfile struct {
	Name              string `json:"name"`
	CompanyName       string `json:"company_name"`
	Abbr              string `json:"abbr"`
	DefaultCurrency   string `json:"default_currency"`
	Country           string `json:"country"`
	GSTIN             string `json:"gstin"`
	PAN               string `json:"pan"`
	PhoneNo           string `json:"phone_no"`
	Email             string `json:"email"`
	Website           string `json:"website"`
	TotalMonthlySales string `json:"total_monthly_sales"`
	CreditLimit       string `json:"credit_limit"`
	Owner             string `json:"owner"`
	Creation          string `json:"creation"`
	Modified          string `json:"modified"`
}

// FromCompany projects the company profile.
func FromCompany(c *company.Company) CompanyProfile {
	return CompanyProfile{
		Name:              c.Code,
		CompanyName:       c.CompanyName,
		Abbr:              c.Abbreviation,
		DefaultCurrency:   c.DefaultCurrency,
		Country:           c.Country,
		GSTIN:             c.GSTIN,
		PAN:               c.PAN,
		PhoneNo:           c.PhoneNo,
		Email:             c.Email,
		Website:           c.Website,
		TotalMonthlySales: moneyfmt.Format(c.TotalMonthlySales, c.DefaultCurrency),
		CreditLimit:       moneyfmt.Format(c.CreditLimit, c.DefaultCurrency),
		Owner:             c.Owner,
		Creation:          c.CreatedAt.Format(dateLayout),
		Modified:          c.ModifiedAt.Format(dateLayout),
	}
}
