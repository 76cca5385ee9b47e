package repository

import (
	"time"

	"cloud.google.com/go/civil"

	"rate-tracker/domain"
)

func date(y int, m time.Month, d int) *civil.Date {
	return &civil.Date{Year: y, Month: m, Day: d}
}

var rate = domain.Float

// DemoPipeline is the originator pipeline extracted from the CRM audit. Two
// records share a borrower name with different case; they are separate loans.
func DemoPipeline() []domain.LoanRecord {
	return []domain.LoanRecord{
		{Name: "Megan Carter", Stage: domain.StageFunded, LoanNumber: "4342859", Property: "9213 Ash Ave SE, Snoqualmie WA", LoanAmount: 1114750, Rate: rate(6.500), Program: domain.ProgramJumbo, ClosingDate: date(2025, time.June, 20), CreditScore: domain.Float(808), LTV: domain.Float(65.0), DTI: domain.Float(41.68), PITI: domain.Float(8376.57), BuyerAgent: "Barb Pexa"},
		{Name: "Chelsey Milton", Stage: domain.StageApplication, LoanNumber: "3010572614", Property: "TBD", LoanAmount: 546025, Rate: rate(6.750), Program: domain.ProgramConventional, ClosingDate: date(2026, time.March, 9), CreditScore: domain.Float(796), LTV: domain.Float(73.2), DTI: domain.Float(26.32), PITI: domain.Float(3541.51)},
		{Name: "Anuj Mittal", Stage: domain.StageFunded, LoanNumber: "3010526", Property: "3493 NE Harrison St", LoanAmount: 850000, Rate: rate(6.875), Program: domain.ProgramJumbo, ClosingDate: date(2025, time.November, 12), BuyerAgent: "Manu Vij"},
		{Name: "JIYEON PARK", Stage: domain.StageFunded, LoanNumber: "3010542", Property: "13910 123rd Ave NE", LoanAmount: 720000, Rate: rate(6.625), Program: domain.ProgramJumbo, ClosingDate: date(2025, time.December, 1), BuyerAgent: "Emma Park"},
		{Name: "Cooper White", Stage: domain.StageApplication, LoanNumber: "3010554", Property: "TBD", LoanAmount: 480000, Rate: rate(6.500), Program: domain.ProgramConventional, BuyerAgent: "Derek Sarr"},
		{Name: "john thang", Stage: domain.StageApplication, LoanNumber: "4214710", Property: "TBD", LoanAmount: 350000, Rate: rate(6.875), Program: domain.ProgramConventional, BuyerAgent: "lisa nguyen"},
		{Name: "Jared Larsen", Stage: domain.StageFunded, LoanNumber: "4073624", Property: "18501 SE Newport Wy", LoanAmount: 600000, Rate: rate(7.125), Program: domain.ProgramConventional, ClosingDate: date(2023, time.September, 26), BuyerAgent: "Karen Cor"},
		{Name: "Matthew Simon", Stage: domain.StageApplication, Property: "1156 NW 58th St", LoanAmount: 425000, Rate: rate(6.750), Program: domain.ProgramConventional},
		{Name: "Chris Candelario", Stage: domain.StageApplication, LoanNumber: "4379189", Property: "TBD", LoanAmount: 390000, Rate: rate(6.625), Program: domain.ProgramConventional, BuyerAgent: "Barb Pexa"},
		{Name: "Faezeh Amjadi", Stage: domain.StageApplication, LoanNumber: "4421329", Property: "TBD", LoanAmount: 375000, Rate: rate(6.500), Program: domain.ProgramConventional},
		{Name: "Stanley Gene", Stage: domain.StageFunded, LoanNumber: "30105361", Property: "1352 Brewster Dr", LoanAmount: 550000, Rate: rate(6.750), Program: domain.ProgramConventional, ClosingDate: date(2026, time.February, 11), BuyerAgent: "Kelly O'Go"},
		{Name: "Samantha Sim", Stage: domain.StageFunded, LoanNumber: "3010535", Property: "206 1st Ave E", LoanAmount: 415200, Rate: rate(6.875), Program: domain.ProgramConventional, ClosingDate: date(2025, time.December, 4), BuyerAgent: "Makenna K"},
		{Name: "Michael Lentz", Stage: domain.StageFunded, LoanNumber: "3010536", Property: "10605 SE 30th St", LoanAmount: 520000, Rate: rate(6.625), Program: domain.ProgramConventional, ClosingDate: date(2025, time.December, 12), BuyerAgent: "Barb Pexa"},
		{Name: "catherine Jin", Stage: domain.StageFunded, LoanNumber: "4124925", Property: "3633 Beach Dr", LoanAmount: 750000, Rate: rate(7.250), Program: domain.ProgramJumbo, ClosingDate: date(2024, time.January, 22), BuyerAgent: "Yao Lu"},
		{Name: "Catherine Jin", Stage: domain.StageLost, Property: "3633 Beach Dr", LoanAmount: 0, Program: domain.ProgramConventional},
	}
}
