package models

// Bank identifies the institution (or cash) a transaction moved through.
// The empty Bank means the transaction is not linked to any.
type Bank string

const (
	BankNone          Bank = ""
	BankNubank        Bank = "Nubank"
	BankInter         Bank = "Inter"
	BankItau          Bank = "Itaú"
	BankBradesco      Bank = "Bradesco"
	BankSantander     Bank = "Santander"
	BankCaixa         Bank = "Caixa"
	BankBancoDoBrasil Bank = "Banco do Brasil"
	BankMercadoPago   Bank = "Mercado Pago"
	BankPicPay        Bank = "PicPay"
	BankC6            Bank = "C6 Bank"
	BankXP            Bank = "XP"
	BankBTG           Bank = "BTG"
	BankCash          Bank = "Cash"
	BankOther         Bank = "Other"
)

// Banks lists every selectable bank.
var Banks = []Bank{
	BankNubank,
	BankInter,
	BankItau,
	BankBradesco,
	BankSantander,
	BankCaixa,
	BankBancoDoBrasil,
	BankMercadoPago,
	BankPicPay,
	BankC6,
	BankXP,
	BankBTG,
	BankCash,
	BankOther,
}

// IsValid reports whether b is a known bank or BankNone.
func (b Bank) IsValid() bool {
	if b == BankNone {
		return true
	}
	for _, known := range Banks {
		if known == b {
			return true
		}
	}
	return false
}
