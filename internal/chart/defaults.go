package chart

// DefaultChart returns the seed chart for a new book: two companies with
// their departments and the four starter accounts.
func DefaultChart() *Service {
	s := NewService()
	must(s.AddCompany("01 - MainCo"))
	must(s.AddCompany("02 - Subsidiary"))
	must(s.AddDepartment("01 - MainCo", "01 - Finance"))
	must(s.AddDepartment("01 - MainCo", "02 - HR"))
	must(s.AddDepartment("02 - Subsidiary", "01 - Sales"))
	must(s.AddAccount("1000 - Cash"))
	must(s.AddAccount("2000 - Payables"))
	must(s.AddAccount("4000 - Revenue"))
	must(s.AddAccount("5000 - Expense"))
	return s
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
