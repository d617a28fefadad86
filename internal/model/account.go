package model

// AccountType is the top-level classification of a posting.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
)

// AccountTypes lists the account types in display order.
var AccountTypes = []AccountType{AccountTypeAsset, AccountTypeLiability, AccountTypeEquity}

// SubClassification refines an AccountType.
type SubClassification string

const (
	SubNonCurrentAssets      SubClassification = "Non-Current Assets"
	SubCurrentAssets         SubClassification = "Current Assets"
	SubNonCurrentLiabilities SubClassification = "Non-Current Liabilities"
	SubCurrentLiabilities    SubClassification = "Current Liabilities"
	SubCapital               SubClassification = "Capital"
	SubRetainedEarnings      SubClassification = "Retained Earnings"
	SubIncomes               SubClassification = "Incomes"
	SubExpenses              SubClassification = "Expenses"

	// SubIncomeLegacy is accepted by the display buckets only; it is not part
	// of the taxonomy.
	SubIncomeLegacy SubClassification = "Income"
)

// LineItem refines a SubClassification.
type LineItem string

// NotApplicable is the only line item of Capital and Retained Earnings.
const NotApplicable LineItem = "Not Applicable"

// Non-current assets.
const (
	LinePropertyPlantEquipment LineItem = "Property, Plant & Equipment"
	LineIntangibleAssets       LineItem = "Intangible Assets"
	LineLongTermInvestments    LineItem = "Long Term Investments"
	LineOtherNonCurrentAssets  LineItem = "Other Non Current Assets"
)

// Current assets.
const (
	LineInventory          LineItem = "Inventory"
	LineTradeReceivables   LineItem = "Trade Receivables"
	LineCash               LineItem = "Cash and Cash Equivalents"
	LineOtherCurrentAssets LineItem = "Other Current Assets"
)

// Current liabilities.
const (
	LineTradePayables           LineItem = "Trade Payables"
	LineShortTermBorrowings     LineItem = "Short Term Borrowings"
	LineOutstandingExpenses     LineItem = "Outstanding Expenses"
	LineShortTermProvisions     LineItem = "Short Term Provisions"
	LineAdvanceFromCustomers    LineItem = "Advance from Customers"
	LineOtherCurrentLiabilities LineItem = "Other Current Liabilities"
)

// Non-current liabilities.
const (
	LineBorrowings                 LineItem = "Borrowings"
	LineLongTermProvisions         LineItem = "Long Term Provisions"
	LineOtherNonCurrentLiabilities LineItem = "Other Non Current Liabilities"
)

// Incomes.
const (
	LineRevenueFromOperations LineItem = "Revenue from Operations"
	LineOtherIncomes          LineItem = "Other Incomes"
)

// Expenses.
const (
	LineMaterialExpenses     LineItem = "Material related Expenses"
	LineEmployeeCompensation LineItem = "Employee Compensation Expenses"
	LineDepreciation         LineItem = "Depreciation & Amortization"
	LineFinanceCosts         LineItem = "Finance Costs"
	LineOtherExpenses        LineItem = "Other Expenses"
	LineTaxExpenses          LineItem = "Tax Expenses"
)
