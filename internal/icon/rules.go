package icon

// Group names the theme a keyword rule belongs to.
type Group string

const (
	GroupSpices     Group = "spices"
	GroupBeverages  Group = "beverages"
	GroupAlcohol    Group = "alcohol"
	GroupMains      Group = "mains"
	GroupPastaRice  Group = "pasta-rice"
	GroupSoups      Group = "soups"
	GroupSalads     Group = "salads"
	GroupBread      Group = "bread"
	GroupDesserts   Group = "desserts"
	GroupFruits     Group = "fruits"
	GroupVegetables Group = "vegetables"
	GroupNuts       Group = "nuts-cereals"
	GroupDairy      Group = "dairy"
	GroupCondiments Group = "condiments"
)

// Rule maps a set of lowercase substrings to a glyph.
type Rule struct {
	Group    Group
	Keywords []string
	Glyph    string
}

// DefaultGlyph is returned when neither a keyword nor the category id is recognized.
const DefaultGlyph = "🍽️"

// rules is evaluated top to bottom and the first hit wins. Some keywords repeat in later
// groups ("salsa", "crema", "limón"); those later entries never fire and are kept so the
// table reads like the menu taxonomy it came from.
var rules = []Rule{
	// spices / mexican
	{GroupSpices, []string{"taco"}, "🌮"},
	{GroupSpices, []string{"burrito"}, "🌯"},
	{GroupSpices, []string{"quesadilla"}, "🧀"},
	{GroupSpices, []string{"nachos"}, "🧀"},
	{GroupSpices, []string{"guacamole"}, "🥑"},
	{GroupSpices, []string{"salsa"}, "🌶️"},
	{GroupSpices, []string{"chile", "chili"}, "🌶️"},
	{GroupSpices, []string{"jalapeño"}, "🌶️"},
	{GroupSpices, []string{"aguacate"}, "🥑"},
	{GroupSpices, []string{"tomate"}, "🍅"},
	{GroupSpices, []string{"cebolla"}, "🧅"},
	{GroupSpices, []string{"limón", "limon"}, "🍋"},

	// beverages
	{GroupBeverages, []string{"café", "coffee"}, "☕"},
	{GroupBeverages, []string{"cappuccino"}, "☕"},
	{GroupBeverages, []string{"latte"}, "☕"},
	{GroupBeverages, []string{"espresso"}, "☕"},
	{GroupBeverages, []string{"americano"}, "☕"},
	{GroupBeverages, []string{"frappé", "frappe"}, "🥤"},
	{GroupBeverages, []string{"frullatto", "smoothie"}, "🥤"},
	{GroupBeverages, []string{"jugo", "juice"}, "🧃"},
	{GroupBeverages, []string{"agua"}, "💧"},
	{GroupBeverages, []string{"refresco", "soda"}, "🥤"},
	{GroupBeverages, []string{"té", "tea"}, "🍵"},
	{GroupBeverages, []string{"chocolate caliente"}, "☕"},
	{GroupBeverages, []string{"limonada"}, "🍋"},
	{GroupBeverages, []string{"naranjada"}, "🍊"},

	// alcohol
	{GroupAlcohol, []string{"cerveza", "beer"}, "🍺"},
	{GroupAlcohol, []string{"vino", "wine"}, "🍷"},
	{GroupAlcohol, []string{"tequila"}, "🥃"},
	{GroupAlcohol, []string{"mezcal"}, "🥃"},
	{GroupAlcohol, []string{"ron"}, "🥃"},
	{GroupAlcohol, []string{"whisky", "whiskey"}, "🥃"},
	{GroupAlcohol, []string{"vodka"}, "🥃"},
	{GroupAlcohol, []string{"margarita"}, "🍹"},
	{GroupAlcohol, []string{"mojito"}, "🍹"},
	{GroupAlcohol, []string{"piña colada"}, "🍹"},

	// mains / proteins
	{GroupMains, []string{"pollo", "chicken"}, "🍗"},
	{GroupMains, []string{"carne", "beef"}, "🥩"},
	{GroupMains, []string{"res"}, "🥩"},
	{GroupMains, []string{"cerdo", "pork"}, "🐷"},
	{GroupMains, []string{"pescado", "fish"}, "🐟"},
	{GroupMains, []string{"salmón", "salmon"}, "🐟"},
	{GroupMains, []string{"atún", "tuna"}, "🐟"},
	{GroupMains, []string{"camarón", "shrimp"}, "🦐"},
	{GroupMains, []string{"langosta", "lobster"}, "🦞"},
	{GroupMains, []string{"cordero", "lamb"}, "🐑"},
	{GroupMains, []string{"chuleta"}, "🥩"},
	{GroupMains, []string{"filete"}, "🥩"},
	{GroupMains, []string{"ribeye"}, "🥩"},

	// pasta / rice
	{GroupPastaRice, []string{"pasta"}, "🍝"},
	{GroupPastaRice, []string{"espagueti", "spaghetti"}, "🍝"},
	{GroupPastaRice, []string{"lasagna", "lasaña"}, "🍝"},
	{GroupPastaRice, []string{"risotto"}, "🍚"},
	{GroupPastaRice, []string{"arroz"}, "🍚"},
	{GroupPastaRice, []string{"paella"}, "🥘"},

	// soups
	{GroupSoups, []string{"sopa", "soup"}, "🍲"},
	{GroupSoups, []string{"caldo"}, "🍲"},
	{GroupSoups, []string{"crema"}, "🍲"},
	{GroupSoups, []string{"consomé"}, "🍲"},

	// salads
	{GroupSalads, []string{"ensalada", "salad"}, "🥗"},
	{GroupSalads, []string{"césar"}, "🥗"},
	{GroupSalads, []string{"caprese"}, "🥗"},

	// breads / sandwiches
	{GroupBread, []string{"sandwich", "sándwich"}, "🥪"},
	{GroupBread, []string{"torta"}, "🥪"},
	{GroupBread, []string{"hamburguesa", "burger"}, "🍔"},
	{GroupBread, []string{"hot dog", "perro"}, "🌭"},
	{GroupBread, []string{"choripan", "chorizo"}, "🌭"},
	{GroupBread, []string{"pan"}, "🍞"},
	{GroupBread, []string{"baguette"}, "🥖"},
	{GroupBread, []string{"croissant"}, "🥐"},
	{GroupBread, []string{"empanada"}, "🥟"},
	{GroupBread, []string{"arepa"}, "🫓"},

	// desserts
	{GroupDesserts, []string{"gelato", "helado"}, "🍨"},
	{GroupDesserts, []string{"parfait"}, "🍨"},
	{GroupDesserts, []string{"tiramisú", "tiramisu"}, "🍰"},
	{GroupDesserts, []string{"cheesecake"}, "🍰"},
	{GroupDesserts, []string{"brownie"}, "🍫"},
	{GroupDesserts, []string{"chocolate"}, "🍫"},
	{GroupDesserts, []string{"flan"}, "🍮"},
	{GroupDesserts, []string{"pudín", "pudding"}, "🍮"},
	{GroupDesserts, []string{"mousse"}, "🍮"},
	{GroupDesserts, []string{"tarta"}, "🥧"},
	{GroupDesserts, []string{"pie"}, "🥧"},
	{GroupDesserts, []string{"galleta", "cookie"}, "🍪"},
	{GroupDesserts, []string{"donut", "dona"}, "🍩"},
	{GroupDesserts, []string{"muffin"}, "🧁"},
	{GroupDesserts, []string{"cupcake"}, "🧁"},

	// fruits
	{GroupFruits, []string{"fresa", "strawberry"}, "🍓"},
	{GroupFruits, []string{"mango"}, "🥭"},
	{GroupFruits, []string{"piña", "pineapple"}, "🍍"},
	{GroupFruits, []string{"banana", "plátano"}, "🍌"},
	{GroupFruits, []string{"manzana", "apple"}, "🍎"},
	{GroupFruits, []string{"naranja", "orange"}, "🍊"},
	{GroupFruits, []string{"limón", "lemon"}, "🍋"},
	{GroupFruits, []string{"uva", "grape"}, "🍇"},
	{GroupFruits, []string{"cereza", "cherry"}, "🍒"},
	{GroupFruits, []string{"durazno", "peach"}, "🍑"},
	{GroupFruits, []string{"kiwi"}, "🥝"},
	{GroupFruits, []string{"coco", "coconut"}, "🥥"},
	{GroupFruits, []string{"maracuyá", "passion"}, "🥭"},

	// vegetables
	{GroupVegetables, []string{"mazorca", "elote", "corn"}, "🌽"},
	{GroupVegetables, []string{"papa", "patata", "potato"}, "🥔"},
	{GroupVegetables, []string{"zanahoria", "carrot"}, "🥕"},
	{GroupVegetables, []string{"brócoli", "broccoli"}, "🥦"},
	{GroupVegetables, []string{"espinaca", "spinach"}, "🥬"},
	{GroupVegetables, []string{"lechuga", "lettuce"}, "🥬"},
	{GroupVegetables, []string{"apio", "celery"}, "🥬"},

	// nuts / cereals
	{GroupNuts, []string{"almendra", "almond"}, "🥜"},
	{GroupNuts, []string{"nuez", "walnut"}, "🥜"},
	{GroupNuts, []string{"maní", "peanut"}, "🥜"},
	{GroupNuts, []string{"granola"}, "🥣"},
	{GroupNuts, []string{"cereal"}, "🥣"},
	{GroupNuts, []string{"avena", "oats"}, "🥣"},

	// dairy
	{GroupDairy, []string{"queso", "cheese"}, "🧀"},
	{GroupDairy, []string{"leche", "milk"}, "🥛"},
	{GroupDairy, []string{"yogurt"}, "🥛"},
	{GroupDairy, []string{"crema"}, "🥛"},

	// condiments
	{GroupCondiments, []string{"salsa"}, "🥄"},
	{GroupCondiments, []string{"aderezo"}, "🥄"},
	{GroupCondiments, []string{"mayonesa"}, "🥄"},
	{GroupCondiments, []string{"mostaza"}, "🥄"},
	{GroupCondiments, []string{"ketchup"}, "🥄"},
	{GroupCondiments, []string{"vinagre"}, "🥄"},
	{GroupCondiments, []string{"aceite"}, "🥄"},
	{GroupCondiments, []string{"mantequilla"}, "🧈"},
}

// categoryGlyphs backs up the keyword rules when a product name says nothing useful.
var categoryGlyphs = map[string]string{
	"tradicionales":       "☕",
	"rituales":            "☕",
	"frullatos":           "🥤",
	"hipotermicas":        "🧊",
	"aguas-frescas":       "💧",
	"cocteleria-mexicana": "🍹",
	"platos-principales":  "🍽️",
	"entradas":            "🥗",
	"tacos":               "🌮",
	"volcanes":            "🌋",
	"gringas":             "🌯",
	"tortas":              "🥪",
	"sandwiches":          "🥖",
	"postres":             "🍰",
	"parfaits-gelatos":    "🍨",
	"cacaos-chocolates":   "🍫",
	"guarniciones":        "🥬",
	"adicionales":         "➕",
	"amasijos":            "🥐",
	"combos":              "🍱",
	"pecados":             "😈",
	"destilados":          "🥃",
	"mezclas":             "🍸",
	"platos":              "🍽️",
	"mazorcas":            "🌽",
}
