package services

import (
	"hotel-checkin/i18n"
	"hotel-checkin/models"
)

// text is one string in every display language.
type text map[string]string

func (t text) in(lang string) string {
	if v, ok := t[i18n.Normalize(lang, "")]; ok && v != "" {
		return v
	}
	return t["es"]
}

type ruleDef struct {
	id          string
	title       text
	subtitle    text
	description text
	icon        string
	color       string
}

// house rules, in display order
var houseRules = []ruleDef{
	{
		id:          "check-in",
		title:       text{"es": "CHECK IN", "en": "CHECK IN", "fr": "ARRIVÉE", "it": "ARRIVO", "de": "CHECK-IN", "pt": "ENTRADA"},
		subtitle:    text{"es": "Entrada 3 pm", "en": "Entry 3 pm", "fr": "Entrée 15h", "it": "Ingresso ore 15", "de": "Check-in 15:00", "pt": "Entrada 15:00"},
		description: text{"es": "Entrada 3 pm.", "en": "Entry 3 pm.", "fr": "Entrée 15h.", "it": "Ingresso ore 15.", "de": "Check-in 15:00 Uhr.", "pt": "Entrada 15h."},
		icon:        "log-in",
		color:       "brown",
	},
	{
		id:          "check-out",
		title:       text{"es": "CHECK OUT", "en": "CHECK OUT", "fr": "DÉPART", "it": "PARTENZA", "de": "CHECK-OUT", "pt": "SAÍDA"},
		subtitle:    text{"es": "Salida 11 am", "en": "Exit 11 am", "fr": "Départ 11h", "it": "Partenza ore 11", "de": "Check-out 11:00", "pt": "Saída 11:00"},
		description: text{"es": "Salida 11 am.", "en": "Exit 11 am.", "fr": "Départ 11h.", "it": "Partenza ore 11.", "de": "Check-out 11:00 Uhr.", "pt": "Saída 11h."},
		icon:        "log-out",
		color:       "deepteal",
	},
	{
		id:          "payment",
		title:       text{"es": "PAGOS", "en": "PAYMENT", "fr": "PAIEMENT", "it": "PAGAMENTO", "de": "ZAHLUNG", "pt": "PAGAMENTO"},
		subtitle:    text{"es": "Al llegar", "en": "On arrival", "fr": "À l'arrivée", "it": "All'arrivo", "de": "Bei Ankunft", "pt": "À chegada"},
		description: text{"es": "Al llegar realizar el pago.", "en": "Payment is due on arrival.", "fr": "Paiement à l'arrivée.", "it": "Pagamento all'arrivo.", "de": "Zahlung bei Ankunft fällig.", "pt": "Pagamento à chegada."},
		icon:        "credit-card",
		color:       "brown",
	},
	{
		id:          "pets",
		title:       text{"es": "MASCOTAS", "en": "PETS", "fr": "ANIMAUX", "it": "ANIMALI", "de": "HAUSTIERE", "pt": "ANIMAIS"},
		subtitle:    text{"es": "Solo excepciones", "en": "Only exceptions", "fr": "Exceptions", "it": "Solo eccezioni", "de": "Ausnahmen", "pt": "Exceções"},
		description: text{"es": "Solo excepciones bajo solicitud.", "en": "Only exceptions upon request.", "fr": "Seulement exceptions sur demande.", "it": "Solo eccezioni su richiesta.", "de": "Nur Ausnahmen auf Anfrage.", "pt": "Apenas exceções sob consulta."},
		icon:        "dog",
		color:       "brown",
	},
	{
		id:          "safe",
		title:       text{"es": "CAJA FUERTE", "en": "SAFE", "fr": "COFFRE", "it": "CASSAFORTE", "de": "SAFE", "pt": "COFRE"},
		subtitle:    text{"es": "En el cuarto", "en": "In room", "fr": "En chambre", "it": "In camera", "de": "Im Zimmer", "pt": "No quarto"},
		description: text{"es": "En todos los cuartos.", "en": "In every room.", "fr": "Dans toutes les chambres.", "it": "In ogni camera.", "de": "In jedem Zimmer.", "pt": "Em todos os quartos."},
		icon:        "vault",
		color:       "deepteal",
	},
	{
		id:          "food",
		title:       text{"es": "ALIMENTOS", "en": "FOOD", "fr": "ALIMENTS", "it": "CIBO", "de": "ESSEN", "pt": "ALIMENTOS"},
		subtitle:    text{"es": "No externos", "en": "No external", "fr": "Pas d'externe", "it": "No esterno", "de": "Keine externen", "pt": "Não externos"},
		description: text{"es": "No se puede introducir alimentos ajenos al restaurante.", "en": "No external food allowed from outside the restaurant.", "fr": "Aliments extérieurs non autorisés.", "it": "Cibo esterno non consentito.", "de": "Keine externen Speisen erlaubt.", "pt": "Não é permitido comida externa."},
		icon:        "utensils-crossed",
		color:       "brown",
	},
	{
		id:          "alcohol",
		title:       text{"es": "ALCOHOL", "en": "ALCOHOL", "fr": "ALCOOL", "it": "ALCOL", "de": "ALKOHOL", "pt": "ÁLCOOL"},
		subtitle:    text{"es": "Prohibido", "en": "Prohibited", "fr": "Interdit", "it": "Vietato", "de": "Verboten", "pt": "Proibido"},
		description: text{"es": "El ingreso de bebidas alcohólicas está estrictamente prohibido.", "en": "Do not enter alcoholic beverages into our facilities.", "fr": "Boissons alcoolisées interdites.", "it": "Bevande alcoliche vietate.", "de": "Alkoholische Getränke verboten.", "pt": "Bebidas alcoólicas proibidas."},
		icon:        "wine-off",
		color:       "brown",
	},
	{
		id:          "dont-run",
		title:       text{"es": "NO CORRER", "en": "DON'T RUN", "fr": "NE PAS COURIR", "it": "NON CORRERE", "de": "NICHT RENNEN", "pt": "NÃO CORRER"},
		subtitle:    text{"es": "Seguridad", "en": "Safety first", "fr": "Sécurité", "it": "Sicurezza", "de": "Sicherheit", "pt": "Segurança"},
		description: text{"es": "No corra dentro de las instalaciones.", "en": "Please don't run inside the facilities.", "fr": "Ne pas courir dans l'établissement.", "it": "Non correre all'interno della struttura.", "de": "Bitte rennen Sie nicht in der Anlage.", "pt": "Não corra dentro das instalações."},
		icon:        "footprints",
		color:       "deepteal",
	},
	{
		id:          "noise",
		title:       text{"es": "RUIDO", "en": "NOISE", "fr": "BRUIT", "it": "RUMORE", "de": "LÄRM", "pt": "RUÍDO"},
		subtitle:    text{"es": "¡Moderado!", "en": "Be quiet!", "fr": "Soyez calme", "it": "Moderato", "de": "Leise bitte", "pt": "Moderado"},
		description: text{"es": "Mantén un volumen moderado ¡Siempre!", "en": "Keep the noise level reasonable at all times.", "fr": "Gardez le silence à tout moment.", "it": "Mantenere il volume moderato sempre.", "de": "Lärmpegel jederzeit niedrig halten.", "pt": "Mantenha o volume moderado sempre."},
		icon:        "volume-2",
		color:       "deepteal",
	},
	{
		id:          "towels",
		title:       text{"es": "TOALLAS", "en": "TOWELS", "fr": "SERVIETTES", "it": "ASCIUGAMANI", "de": "HANDTÜCHER", "pt": "TOALHAS"},
		subtitle:    text{"es": "Cuídalas", "en": "Take care", "fr": "Prendre soin", "it": "Curale", "de": "Pflege", "pt": "Cuide"},
		description: text{"es": "Cuida las toallas de playa y de habitación.", "en": "Take care of the beach and room towels.", "fr": "Prenez soin des serviettes de plage et de chambre.", "it": "Cura gli asciugamani da spiaggia e da camera.", "de": "Strand- und Zimmerhandtücher schonen.", "pt": "Cuide das toalhas de praia e de quarto."},
		icon:        "shirt",
		color:       "brown",
	},
	{
		id:          "ac",
		title:       text{"es": "AIRE ACC", "en": "A/C", "fr": "CLIM", "it": "A/C", "de": "KLIMA", "pt": "AR COND."},
		subtitle:    text{"es": "Apágalo", "en": "Turn off", "fr": "Éteindre", "it": "Spegni", "de": "Ausschalten", "pt": "Desligue"},
		description: text{"es": "Apágalo al salir del cuarto.", "en": "Turn the A/C off when you leave the room.", "fr": "Éteignez la clim en sortant.", "it": "Spegni l'aria condizionata quando esci.", "de": "Klimaanlage beim Verlassen ausschalten.", "pt": "Desligue o ar condicionado ao sair."},
		icon:        "wind",
		color:       "deepteal",
	},
	{
		id:          "keys",
		title:       text{"es": "LLAVES", "en": "KEYS", "fr": "CLÉS", "it": "CHIAVI", "de": "SCHLÜSSEL", "pt": "CHAVES"},
		subtitle:    text{"es": "No las pierdas", "en": "Don't lose", "fr": "Ne perdez pas", "it": "Non perderle", "de": "Nicht verlieren", "pt": "Não perca"},
		description: text{"es": "Llévalas siempre contigo, no las pierdas.", "en": "Always keep it with you, don't lose them.", "fr": "Gardez-les sur vous, ne les perdez pas.", "it": "Portile sempre con te, non perderle.", "de": "Immer dabei haben, nicht verlieren.", "pt": "Leve-as sempre consigo, não as perca."},
		icon:        "key",
		color:       "brown",
	},
	{
		id:          "drugs",
		title:       text{"es": "DROGAS", "en": "DRUGS", "fr": "DROGUES", "it": "DROGHE", "de": "DROGEN", "pt": "DROGAS"},
		subtitle:    text{"es": "Prohibido", "en": "Prohibited", "fr": "Interdit", "it": "Vietato", "de": "Verboten", "pt": "Proibido"},
		description: text{"es": "Compra, venta y consumo están totalmente prohibidos.", "en": "Strictly prohibited.", "fr": "Strictement interdit.", "it": "Severamente vietato.", "de": "Strengstens verboten.", "pt": "Estritamente proibido."},
		icon:        "ban",
		color:       "brown",
	},
	{
		id:          "damages",
		title:       text{"es": "DAÑOS", "en": "DAMAGES", "fr": "DOMMAGES", "it": "DANNI", "de": "SCHÄDEN", "pt": "DANOS"},
		subtitle:    text{"es": "Responsable", "en": "Responsible", "fr": "Responsable", "it": "Responsabile", "de": "Verantwortlich", "pt": "Responsável"},
		description: text{"es": "Daños serán penalizados.", "en": "Enjoy responsibly. Fees apply for damage.", "fr": "Dommages pénalisés.", "it": "I danni saranno penalizzati.", "de": "Schäden werden in Rechnung gestellt.", "pt": "Danos serão penalizados."},
		icon:        "shield-alert",
		color:       "brown",
	},
	{
		id:          "visitors",
		title:       text{"es": "VISITANTES", "en": "VISITORS", "fr": "VISITEURS", "it": "VISITATORI", "de": "BESUCHER", "pt": "VISITAS"},
		subtitle:    text{"es": "Zonas comunes", "en": "Common areas", "fr": "Zones communes", "it": "Zone comuni", "de": "Gemeinschafts.", "pt": "Áreas comuns"},
		description: text{"es": "Solo en zonas sociales, no en los cuartos.", "en": "Welcome in common areas, not in rooms.", "fr": "Zones sociales seulement.", "it": "Solo aree sociali, no camere.", "de": "Nur in Gemeinschaftsbereichen.", "pt": "Apenas áreas comuns, não nos quartos."},
		icon:        "users",
		color:       "deepteal",
	},
	{
		id:          "tobacco",
		title:       text{"es": "TABACO", "en": "TOBACCO", "fr": "TABAC", "it": "TABACCO", "de": "TABAK", "pt": "TABACO"},
		subtitle:    text{"es": "No fumar", "en": "No smoking", "fr": "Non fumeur", "it": "Vietato fumare", "de": "Nicht rauchen", "pt": "Não fumar"},
		description: text{"es": "Estrictamente prohibido fumar en las habitaciones.", "en": "Strictly forbidden inside rooms.", "fr": "Interdit dans les chambres.", "it": "Vietato nelle camere.", "de": "In den Zimmern verboten.", "pt": "Proibido nos quartos."},
		icon:        "cigarette",
		color:       "brown",
	},
}

type penaltyDef struct {
	id     string
	label  text
	amount int64
}

// fixed charges; amount 0 is assessed on site
var penalties = []penaltyDef{
	{"extra-cleaning", text{"es": "Limpieza extra", "en": "Extra cleaning", "fr": "Nettoyage supplémentaire", "it": "Pulizia extra", "de": "Zusätzliche Reinigung", "pt": "Limpeza extra"}, 1000},
	{"sheets", text{"es": "Sábanas (Reemplazo)", "en": "Sheets (Replacement)", "fr": "Draps (Remplacement)", "it": "Lenzuola (Sostituzione)", "de": "Bettwäsche (Ersatz)", "pt": "Lençóis (Reposição)"}, 2500},
	{"towels", text{"es": "Toallas (Extravío)", "en": "Towels (Loss)", "fr": "Serviettes (Perte)", "it": "Asciugamani (Smarrimento)", "de": "Handtücher (Verlust)", "pt": "Toalhas (Extravio)"}, 350},
	{"facial-towel", text{"es": "Facial (Toalla)", "en": "Facial (Towel)", "fr": "Visage (Serviette)", "it": "Viso (Asciugamano)", "de": "Gesicht (Handtuch)", "pt": "Rosto (Toalha)"}, 100},
	{"key", text{"es": "Llave (Pérdida)", "en": "Key (Loss)", "fr": "Clé (Perte)", "it": "Chiave (Smarrimento)", "de": "Schlüssel (Verlust)", "pt": "Chave (Perda)"}, 200},
	{"other-damages", text{"es": "Otros Daños", "en": "Other Damages", "fr": "Autres dommages", "it": "Altri danni", "de": "Sonstige Schäden", "pt": "Outros Danos"}, 0},
}

// Rules returns the house rules resolved to lang.
func Rules(lang string) []models.Rule {
	out := make([]models.Rule, 0, len(houseRules))
	for _, r := range houseRules {
		out = append(out, models.Rule{
			ID:          r.id,
			Title:       r.title.in(lang),
			Subtitle:    r.subtitle.in(lang),
			Description: r.description.in(lang),
			Icon:        r.icon,
			Color:       r.color,
		})
	}
	return out
}

// Penalties returns the penalty list for lang with amounts formatted in
// currency.
func Penalties(lang, currency string) []models.Penalty {
	out := make([]models.Penalty, 0, len(penalties))
	for _, p := range penalties {
		row := models.Penalty{ID: p.id, Label: p.label.in(lang), Amount: p.amount}
		if p.amount > 0 {
			row.Text = i18n.FormatAmount(lang, p.amount, currency)
		} else {
			row.Text = i18n.Label(lang, i18n.Valuation)
		}
		out = append(out, row)
	}
	return out
}
