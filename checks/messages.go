package checks

// LangEnglish selects the English wording set
const LangEnglish = "en"

type catalog struct {
	trafficViolation  string
	unpaidParking     string
	insuranceExpired  string
	insuranceExpiring string
}

var english = catalog{
	trafficViolation:  "🔴 Traffic Violation",
	unpaidParking:     "🅿️ Unpaid Parking",
	insuranceExpired:  "⚠️ Insurance Expired",
	insuranceExpiring: "⏳ Insurance expiring soon (%d days left)",
}

var swahili = catalog{
	trafficViolation:  "🔴 Kuna makosa ya barabarani",
	unpaidParking:     "🅿️ Kuna maegesho hayajalipwa",
	insuranceExpired:  "⚠️ Bima imekwisha muda wake",
	insuranceExpiring: "⏳ Bima inakaribia kuisha (%d siku)",
}

// messagesFor picks the wording set. Anything other than exactly "en" gets
// the Swahili set; there is no locale table.
func messagesFor(lang string) catalog {
	if lang == LangEnglish {
		return english
	}
	return swahili
}
