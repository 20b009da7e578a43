package i18n

import goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

// Message IDs shared between the catalog and the views.
const (
	BillAmount       = "bill_amount"
	TipPercent       = "tip_percent"
	CustomTip        = "custom_tip"
	RoundUp          = "round_up"
	PartySize        = "party_size"
	Currency         = "currency"
	TipLabel         = "tip_label"
	TotalLabel       = "total_label"
	PerPersonLabel   = "per_person_label"
	Ready            = "ready"
	CalculationCount = "calculation_count"
	Reset            = "reset"
	QuitTitle        = "quit_title"
	QuitMessage      = "quit_message"
)

var englishMessages = []*goi18n.Message{
	{ID: BillAmount, Other: "Bill amount", Description: "Label for the bill entry field"},
	{ID: TipPercent, Other: "Tip percentage"},
	{ID: CustomTip, Other: "Custom"},
	{ID: RoundUp, Other: "Round up tip"},
	{ID: PartySize, Other: "Party size"},
	{ID: Currency, Other: "Currency"},
	{ID: TipLabel, Other: "Tip"},
	{ID: TotalLabel, Other: "Total"},
	{ID: PerPersonLabel, Other: "Per person"},
	{ID: Ready, Other: "Ready"},
	{ID: CalculationCount, One: "{{.Count}} calculation", Other: "{{.Count}} calculations"},
	{ID: Reset, Other: "Reset"},
	{ID: QuitTitle, Other: "Quit"},
	{ID: QuitMessage, Other: "Are you sure you want to quit?"},
}

var spanishMessages = []*goi18n.Message{
	{ID: BillAmount, Other: "Importe de la cuenta"},
	{ID: TipPercent, Other: "Porcentaje de propina"},
	{ID: CustomTip, Other: "Personalizado"},
	{ID: RoundUp, Other: "Redondear la propina"},
	{ID: PartySize, Other: "Personas"},
	{ID: Currency, Other: "Moneda"},
	{ID: TipLabel, Other: "Propina"},
	{ID: TotalLabel, Other: "Total"},
	{ID: PerPersonLabel, Other: "Por persona"},
	{ID: Ready, Other: "Listo"},
	{ID: CalculationCount, One: "{{.Count}} cálculo", Other: "{{.Count}} cálculos"},
	{ID: Reset, Other: "Restablecer"},
	{ID: QuitTitle, Other: "Salir"},
	{ID: QuitMessage, Other: "¿Seguro que quieres salir?"},
}
