package model

// DefaultClauses returns a fresh copy of the seed clause set.
func DefaultClauses() ClauseList {
	return ClauseList{
		{
			ID:       "rent",
			Title:    "Base Rent",
			Body:     "Tenant shall pay base rent as outlined in the Financial Terms section, subject to annual adjustments if applicable.",
			Included: true,
		},
		{
			ID:       "term",
			Title:    "Term",
			Body:     "Initial lease term of __ years, commencing upon Delivery of Possession or Substantial Completion, whichever occurs first.",
			Included: true,
		},
		{
			ID:       "ti",
			Title:    "Tenant Improvements",
			Body:     "Landlord to provide a Tenant Improvement allowance of $__ per RSF, payable per mutually agreed draw schedule.",
			Included: true,
		},
		{
			ID:       "nnn",
			Title:    "Operating Expenses (NNN)",
			Body:     "Tenant responsible for proportionate share of taxes, insurance, and common area maintenance as further defined herein.",
			Included: true,
		},
		{
			ID:       "options",
			Title:    "Options",
			Body:     "Tenant to receive __ option(s) to extend at then‑market or fixed rates, with notice periods as mutually agreed.",
			Included: true,
		},
		{
			ID:       "dd",
			Title:    "Due Diligence",
			Body:     "Tenant shall have a due diligence period of __ days following full execution to inspect title, survey, and property conditions.",
			Included: true,
		},
		{
			ID:       "assignment",
			Title:    "Assignment/Subletting",
			Body:     "Tenant may assign or sublet subject to Landlord's reasonable consent, not to be unreasonably withheld, conditioned, or delayed.",
			Included: false,
		},
		{
			ID:       "signage",
			Title:    "Signage",
			Body:     "Tenant shall be entitled to building and monument signage consistent with project standards and applicable codes.",
			Included: true,
		},
		{
			ID:       "commission",
			Title:    "Commission",
			Body:     "Landlord agrees to pay a real estate commission per a separate commission agreement at execution of lease.",
			Included: true,
		},
	}
}
