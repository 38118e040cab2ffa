package model

import "fmt"

// Country is a country recognized in LinkedIn location strings. The value
// is the lowercase English name as it appears on job cards.
type Country string

const (
	CountryAustria            Country = "austria"
	CountryBahrain            Country = "bahrain"
	CountryBelgium            Country = "belgium"
	CountryBrazil             Country = "brazil"
	CountryCanada             Country = "canada"
	CountryChile              Country = "chile"
	CountryChina              Country = "china"
	CountryColombia           Country = "colombia"
	CountryCostaRica          Country = "costa rica"
	CountryCzechRepublic      Country = "czech republic"
	CountryDenmark            Country = "denmark"
	CountryEcuador            Country = "ecuador"
	CountryEgypt              Country = "egypt"
	CountryFinland            Country = "finland"
	CountryFrance             Country = "france"
	CountryGermany            Country = "germany"
	CountryGreece             Country = "greece"
	CountryHongKong           Country = "hong kong"
	CountryHungary            Country = "hungary"
	CountryIndia              Country = "india"
	CountryIndonesia          Country = "indonesia"
	CountryIreland            Country = "ireland"
	CountryIsrael             Country = "israel"
	CountryItaly              Country = "italy"
	CountryJapan              Country = "japan"
	CountryKuwait             Country = "kuwait"
	CountryLuxembourg         Country = "luxembourg"
	CountryMalaysia           Country = "malaysia"
	CountryMexico             Country = "mexico"
	CountryMorocco            Country = "morocco"
	CountryNetherlands        Country = "netherlands"
	CountryNewZealand         Country = "new zealand"
	CountryNigeria            Country = "nigeria"
	CountryNorway             Country = "norway"
	CountryOman               Country = "oman"
	CountryPakistan           Country = "pakistan"
	CountryPanama             Country = "panama"
	CountryPeru               Country = "peru"
	CountryPhilippines        Country = "philippines"
	CountryPoland             Country = "poland"
	CountryPortugal           Country = "portugal"
	CountryQatar              Country = "qatar"
	CountryRomania            Country = "romania"
	CountrySaudiArabia        Country = "saudi arabia"
	CountrySingapore          Country = "singapore"
	CountrySouthAfrica        Country = "south africa"
	CountrySouthKorea         Country = "south korea"
	CountrySpain              Country = "spain"
	CountrySweden             Country = "sweden"
	CountrySwitzerland        Country = "switzerland"
	CountryTaiwan             Country = "taiwan"
	CountryThailand           Country = "thailand"
	CountryTurkey             Country = "turkey"
	CountryUkraine            Country = "ukraine"
	CountryUnitedArabEmirates Country = "united arab emirates"
	CountryUK                 Country = "united kingdom"
	CountryUSA                Country = "united states"
	CountryUruguay            Country = "uruguay"
	CountryVenezuela          Country = "venezuela"
	CountryVietnam            Country = "vietnam"
	CountryWorldwide          Country = "worldwide"
)

// countryAliases maps lowercase names and short codes to countries.
var countryAliases = map[string]Country{
	"austria": CountryAustria, "at": CountryAustria,
	"bahrain": CountryBahrain, "bh": CountryBahrain,
	"belgium": CountryBelgium, "be": CountryBelgium,
	"brazil": CountryBrazil, "br": CountryBrazil,
	"canada": CountryCanada, "ca": CountryCanada,
	"chile": CountryChile, "cl": CountryChile,
	"china": CountryChina, "cn": CountryChina,
	"colombia": CountryColombia, "col": CountryColombia,
	"costa rica": CountryCostaRica, "cr": CountryCostaRica,
	"czech republic": CountryCzechRepublic, "cz": CountryCzechRepublic,
	"denmark": CountryDenmark, "dk": CountryDenmark,
	"ecuador": CountryEcuador, "ec": CountryEcuador,
	"egypt": CountryEgypt, "eg": CountryEgypt,
	"finland": CountryFinland, "fi": CountryFinland,
	"france": CountryFrance, "fr": CountryFrance,
	"germany": CountryGermany, "de": CountryGermany,
	"greece": CountryGreece, "gr": CountryGreece,
	"hong kong": CountryHongKong, "hk": CountryHongKong,
	"hungary": CountryHungary, "hu": CountryHungary,
	"india": CountryIndia, "in": CountryIndia,
	"indonesia": CountryIndonesia, "id": CountryIndonesia,
	"ireland": CountryIreland, "ie": CountryIreland,
	"israel": CountryIsrael, "il": CountryIsrael,
	"italy": CountryItaly, "it": CountryItaly,
	"japan": CountryJapan, "jp": CountryJapan,
	"kuwait": CountryKuwait, "kw": CountryKuwait,
	"luxembourg": CountryLuxembourg, "lu": CountryLuxembourg,
	"malaysia": CountryMalaysia, "my": CountryMalaysia,
	"mexico": CountryMexico, "mx": CountryMexico,
	"morocco": CountryMorocco, "ma": CountryMorocco,
	"netherlands": CountryNetherlands, "nl": CountryNetherlands,
	"new zealand": CountryNewZealand, "nz": CountryNewZealand,
	"nigeria": CountryNigeria, "ng": CountryNigeria,
	"norway": CountryNorway, "no": CountryNorway,
	"oman": CountryOman, "om": CountryOman,
	"pakistan": CountryPakistan, "pk": CountryPakistan,
	"panama": CountryPanama, "pa": CountryPanama,
	"peru": CountryPeru, "pe": CountryPeru,
	"philippines": CountryPhilippines, "ph": CountryPhilippines,
	"poland": CountryPoland, "pl": CountryPoland,
	"portugal": CountryPortugal, "pt": CountryPortugal,
	"qatar": CountryQatar, "qa": CountryQatar,
	"romania": CountryRomania, "ro": CountryRomania,
	"saudi arabia": CountrySaudiArabia, "sa": CountrySaudiArabia,
	"singapore": CountrySingapore, "sg": CountrySingapore,
	"south africa": CountrySouthAfrica, "za": CountrySouthAfrica,
	"south korea": CountrySouthKorea, "kr": CountrySouthKorea,
	"spain": CountrySpain, "es": CountrySpain,
	"sweden": CountrySweden, "se": CountrySweden,
	"switzerland": CountrySwitzerland, "ch": CountrySwitzerland,
	"taiwan": CountryTaiwan, "tw": CountryTaiwan,
	"thailand": CountryThailand, "th": CountryThailand,
	"turkey": CountryTurkey, "tr": CountryTurkey,
	"ukraine": CountryUkraine, "ua": CountryUkraine,
	"united arab emirates": CountryUnitedArabEmirates, "ae": CountryUnitedArabEmirates,
	"united kingdom": CountryUK, "uk": CountryUK,
	"united states": CountryUSA, "us": CountryUSA, "usa": CountryUSA,
	"uruguay": CountryUruguay, "uy": CountryUruguay,
	"venezuela": CountryVenezuela, "ve": CountryVenezuela,
	"vietnam": CountryVietnam, "vn": CountryVietnam,
	"worldwide": CountryWorldwide, "ww": CountryWorldwide,
}

// CountryFromAlias resolves a lowercase country name or short code.
func CountryFromAlias(alias string) (Country, error) {
	if c, ok := countryAliases[alias]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown country %q", alias)
}
