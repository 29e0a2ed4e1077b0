// Package billing provides the domain model for tenant bills.
//
// A Bill is the aggregate root. It owns, and is deleted together with:
//   - Invoice: at most one per bill
//   - Payment: money recorded against the bill, never applied automatically
//   - ServiceCharge: extra services billed on top of the base charges
//
// The amount due of a bill is MonthlyFee + Water + Electricity + Waste.
// Service charges are informational and not part of that sum.
package billing
