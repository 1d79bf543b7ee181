package models

// Gender of a renter
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// PaymentStatus is a renter's current rent status
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusUnpaid  PaymentStatus = "Unpaid"
	PaymentStatusOverdue PaymentStatus = "Overdue"
)

// PaymentMethod is how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodOther        PaymentMethod = "Other"
)

// ExpenseCategory groups expenses for reporting
type ExpenseCategory string

const (
	ExpenseCategoryUtilities   ExpenseCategory = "Utilities"
	ExpenseCategoryMaintenance ExpenseCategory = "Maintenance"
	ExpenseCategoryStaffSalary ExpenseCategory = "Staff Salary"
	ExpenseCategorySupplies    ExpenseCategory = "Supplies"
	ExpenseCategoryMarketing   ExpenseCategory = "Marketing"
	ExpenseCategoryOther       ExpenseCategory = "Other"
)

// IsValid checks if the Gender is valid
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// IsValid checks if the PaymentStatus is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusOverdue:
		return true
	}
	return false
}

// IsValid checks if the PaymentMethod is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodBankTransfer, PaymentMethodOther:
		return true
	}
	return false
}

// IsValid checks if the ExpenseCategory is valid
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryUtilities, ExpenseCategoryMaintenance, ExpenseCategoryStaffSalary,
		ExpenseCategorySupplies, ExpenseCategoryMarketing, ExpenseCategoryOther:
		return true
	}
	return false
}
