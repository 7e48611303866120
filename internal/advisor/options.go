package advisor

import "github.com/lokesh-122/SmartMoney/internal/core"

// InvestmentType groups catalog entries by instrument.
type InvestmentType string

const (
	TypeStocks       InvestmentType = "stocks"
	TypeBonds        InvestmentType = "bonds"
	TypeMutualFund   InvestmentType = "mutualFund"
	TypeFixedDeposit InvestmentType = "fixedDeposit"
	TypeRealEstate   InvestmentType = "realEstate"
	TypeCrypto       InvestmentType = "crypto"
)

// InvestmentOption is one entry of the static recommendation catalog. The
// catalog is reference data, not user data; it is never mutated.
type InvestmentOption struct {
	Type          InvestmentType `json:"type"`
	Name          string         `json:"name"`
	RiskLevel     core.RiskLevel `json:"riskLevel"`
	MinAmount     float64        `json:"minAmount"`
	AverageReturn float64        `json:"averageReturn"`
	Description   string         `json:"description"`
	TimeFrame     string         `json:"timeFrame"`
}

var investmentOptions = []InvestmentOption{
	{
		Type:          TypeFixedDeposit,
		Name:          "Fixed Deposit",
		RiskLevel:     core.RiskLow,
		MinAmount:     1000,
		AverageReturn: 4.5,
		Description:   "A secure investment with guaranteed returns. Ideal for conservative investors.",
		TimeFrame:     "6 months to 5 years",
	},
	{
		Type:          TypeBonds,
		Name:          "Government Bonds",
		RiskLevel:     core.RiskLow,
		MinAmount:     1000,
		AverageReturn: 5.5,
		Description:   "Debt securities issued by the government with regular interest payments.",
		TimeFrame:     "1 to 30 years",
	},
	{
		Type:          TypeMutualFund,
		Name:          "Debt Mutual Funds",
		RiskLevel:     core.RiskLow,
		MinAmount:     500,
		AverageReturn: 6.0,
		Description:   "Professionally managed funds that invest in fixed-income securities.",
		TimeFrame:     "1 to 3 years",
	},
	{
		Type:          TypeMutualFund,
		Name:          "Balanced Mutual Funds",
		RiskLevel:     core.RiskMedium,
		MinAmount:     1000,
		AverageReturn: 9.0,
		Description:   "A mix of equity and debt investments that offer stability with moderate growth.",
		TimeFrame:     "3 to 5 years",
	},
	{
		Type:          TypeMutualFund,
		Name:          "Equity Mutual Funds",
		RiskLevel:     core.RiskMedium,
		MinAmount:     1000,
		AverageReturn: 12.0,
		Description:   "Investments in the stock market managed by professional fund managers.",
		TimeFrame:     "5+ years",
	},
	{
		Type:          TypeStocks,
		Name:          "Blue-chip Stocks",
		RiskLevel:     core.RiskMedium,
		MinAmount:     500,
		AverageReturn: 10.0,
		Description:   "Shares of well-established companies with stable earnings.",
		TimeFrame:     "5+ years",
	},
	{
		Type:          TypeStocks,
		Name:          "Growth Stocks",
		RiskLevel:     core.RiskHigh,
		MinAmount:     1000,
		AverageReturn: 15.0,
		Description:   "Shares of companies expected to grow at an above-average rate.",
		TimeFrame:     "7+ years",
	},
	{
		Type:          TypeRealEstate,
		Name:          "REITs (Real Estate Investment Trusts)",
		RiskLevel:     core.RiskHigh,
		MinAmount:     5000,
		AverageReturn: 8.0,
		Description:   "Companies that own, operate, or finance income-generating real estate.",
		TimeFrame:     "5+ years",
	},
	{
		Type:          TypeCrypto,
		Name:          "Cryptocurrency",
		RiskLevel:     core.RiskHigh,
		MinAmount:     100,
		AverageReturn: 20.0,
		Description:   "Digital or virtual currencies that use cryptography for security.",
		TimeFrame:     "5+ years",
	},
}

// InvestmentCatalog returns a copy of the static catalog.
func InvestmentCatalog() []InvestmentOption {
	out := make([]InvestmentOption, len(investmentOptions))
	copy(out, investmentOptions)
	return out
}
