package config

import "github.com/krishnateja08/FII-DII-Pulse/model"

// DefaultMarketConfig is the embedded copy of the market data tables.
// The holiday calendar is year-keyed and must be refreshed yearly; prefer
// shipping updates through marketDataFile rather than editing this file.
func DefaultMarketConfig() *model.MarketConfig {
	return &model.MarketConfig{
		CutoffHour:   18,
		CutoffMinute: 30,
		Holidays: []string{
			// 2025
			"2025-01-26", "2025-02-26", "2025-03-14", "2025-03-31",
			"2025-04-10", "2025-04-14", "2025-04-18", "2025-05-01",
			"2025-08-15", "2025-08-27", "2025-10-02",
			"2025-10-21", "2025-10-22", "2025-11-05", "2025-12-25",
			// 2026
			"2026-01-26", "2026-03-19", "2026-03-20", "2026-04-02",
			"2026-04-03", "2026-04-14", "2026-04-17", "2026-05-01",
			"2026-06-19", "2026-08-15", "2026-08-31", "2026-10-09",
			"2026-10-28", "2026-11-25", "2026-12-25",
		},
		FiiKeywords: []string{
			"FII", "FPI", "FOREIGN", "OVERSEAS", "GLOBAL", "INTERNATIONAL", "NON RESIDENT",
			"MORGAN STANLEY", "GOLDMAN SACHS", "CITIGROUP", "CITI BANK", "CITIBANK",
			"BLACKROCK", "VANGUARD", "FIDELITY", "NOMURA", "MACQUARIE", "MORGANSTANLEY",
			"UBS", "BARCLAYS", "HSBC", "JPMORGAN", "JP MORGAN", "DEUTSCHE", "DB INTERNATIONAL",
			"MERRILL LYNCH", "SOCIETE GENERALE", "BNP PARIBAS", "LAZARD", "NATIXIS",
			"WARBURG", "WELLINGTON", "ABERDEEN", "SCHRODERS", "ASHMORE", "INVESCO",
			"EASTSPRING", "MATTHEWS ASIA", "DIMENSIONAL", "NEUBERGER", "PICTET",
			"CREDIT SUISSE", "CLSA", "JEFFERIES", "BOFA", "BANK OF AMERICA", "CITI GROUP",
			"MOTILAL OSWAL FOREIGN", "MIRAE ASSET GLOBAL", "AMUNDI", "FRANKLIN OVERSEAS",
			"FIRST STATE", "OPPENHEIMER", "ARTISAN", "DRIEHAUS", "CAUSEWAY", "COMMONWEALTH",
			"DODGE & COX", "HARBOR", "WASATCH", "WILLIAM BLAIR", "MANNING", "THORNBURG",
			"GENESIS", "CORONATION", "ALLAN GRAY", "AFRICA", "EMERGING MARKETS",
			"SINGAPORE", "CAYMAN", "MAURITIUS", "CYPRUS", "NETHERLANDS ANTILLES",
		},
		DiiKeywords: []string{
			"MUTUAL FUND", "TRUSTEE", "AMC LIMITED", "ASSET MANAGEMENT",
			" MF ", "MF-", "- MF", "(MF)", "_MF_",
			"SBI MF", "SBI MUTUAL", "SBI BLUECHIP", "SBI MAGNUM",
			"HDFC MF", "HDFC MUTUAL", "HDFC BALANCED", "HDFC EQUITY",
			"ICICI PRUDENTIAL MF", "ICICI PRU MF", "ICICI PRUDENTIAL MUTUAL",
			"KOTAK MAHINDRA MF", "KOTAK MF", "KOTAK MUTUAL",
			"AXIS MUTUAL", "AXIS MF", "AXIS LONG TERM",
			"NIPPON INDIA MF", "NIPPON MF", "NIPPON MUTUAL", "NIPPON INDIA MUTUAL",
			"ADITYA BIRLA SUN LIFE", "ABSL MF", "ADITYA BIRLA MF",
			"DSP MUTUAL", "DSP MF", "DSP BLACKROCK",
			"FRANKLIN TEMPLETON", "FRANKLIN INDIA",
			"TATA MUTUAL", "TATA MF", "TATA AIA",
			"MIRAE ASSET MF", "MIRAE ASSET MUTUAL",
			"EDELWEISS MF", "EDELWEISS MUTUAL",
			"MOTILAL OSWAL MF", "MOTILAL OSWAL MUTUAL",
			"SUNDARAM MF", "SUNDARAM MUTUAL",
			"UTI MUTUAL", "UTI MF", "UTI TRUSTEE",
			"CANARA ROBECO", "PGIM INDIA MF", "PGIM INDIA MUTUAL",
			"WHITEOAK CAPITAL MF", "WHITEOAK MF",
			"QUANT MUTUAL", "QUANT MF",
			"BANDHAN MF", "BANDHAN MUTUAL",
			"NAVI MF", "NAVI MUTUAL", "360 ONE MF", "360ONE MF",
			"GROWW MF", "GROWW MUTUAL",
			"SAMCO MF", "SAMCO MUTUAL", "TRUST MF", "TRUST MUTUAL",
			"LIC OF INDIA", "LIC MF", "LIFE INSURANCE CORPORATION",
			"SBI LIFE", "HDFC LIFE", "ICICI PRUDENTIAL LIFE", "MAX LIFE", "BAJAJ LIFE",
			"INSURANCE", "LIFE INSURANCE", "GENERAL INSURANCE", "REINSURANCE",
			"NEW INDIA ASSURANCE", "ORIENTAL INSURANCE", "NATIONAL INSURANCE CO",
			"BAJAJ ALLIANZ", "HDFC ERGO", "ICICI LOMBARD", "STAR HEALTH", "CARE HEALTH",
			"GIC RE", "GIC OF INDIA", "UNITED INDIA", "AGRICULTURE INSURANCE",
			"PROVIDENT FUND", "PENSION FUND", "NATIONAL PENSION", "NPS TRUST",
			"EMPLOYEES PROVIDENT", "EPFO", "COAL MINES", "SEAMEN PROVIDENT",
			"NATIONAL INVESTMENT AND INFRASTRUCTURE", "NIIF",
			"INDIA INFRASTRUCTURE FINANCE", "IIFCL",
			"POWER FINANCE", "PFC", "REC LIMITED", "REC LTD",
			"NABARD", "SIDBI", "EXIM BANK", "NATIONAL HOUSING BANK",
			"ALTERNATIVE INVESTMENT FUND", "AIF", "CAT III AIF", "CAT II AIF",
			"PORTFOLIO MANAGEMENT", "PMS ",
		},
		FallbackStocks: []model.InstitutionalStock{
			{Symbol: "GMRAIRPORT.NS", Name: "GMR Airports", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "TORNTPHARM.NS", Name: "Torrent Pharma", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "POWERGRID.NS", Name: "Power Grid Corp", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "JSWENERGY.NS", Name: "JSW Energy", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "SUPREMEIND.NS", Name: "Supreme Industries", FiiCash: model.ActionBuy, DiiCash: model.ActionSell},
			{Symbol: "ASTRAL.NS", Name: "Astral Poly", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "INDIGO.NS", Name: "IndiGo", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "BSE.NS", Name: "BSE Limited", FiiCash: model.ActionSell, DiiCash: model.ActionSell},
			{Symbol: "GODREJCP.NS", Name: "Godrej Consumer", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "SBICARD.NS", Name: "SBI Cards", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "CAMS.NS", Name: "CAMS", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "BRITANNIA.NS", Name: "Britannia", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "KFINTECH.NS", Name: "KFin Technologies", FiiCash: model.ActionBuy, DiiCash: model.ActionSell},
			{Symbol: "ANGELONE.NS", Name: "Angel One", FiiCash: model.ActionSell, DiiCash: model.ActionBuy},
			{Symbol: "POLICYBZR.NS", Name: "PB Fintech", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "NUVAMA.NS", Name: "Nuvama Wealth", FiiCash: model.ActionBuy, DiiCash: model.ActionSell},
			{Symbol: "FORTIS.NS", Name: "Fortis Healthcare", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "MANAPPURAM.NS", Name: "Manappuram Finance", FiiCash: model.ActionBuy, DiiCash: model.ActionSell},
			{Symbol: "360ONE.NS", Name: "360 One WAM", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
			{Symbol: "APLAPOLLO.NS", Name: "APL Apollo Tubes", FiiCash: model.ActionBuy, DiiCash: model.ActionBuy},
		},
	}
}
