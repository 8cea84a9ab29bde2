package character

import (
	"strconv"
	"strings"
)

// coinsPerPound is how many coins of any denomination weigh one pound
const coinsPerPound = 50

// Currency keeps each denomination as the numeric string the sheet stores
type Currency struct {
	CP string `json:"cp"`
	SP string `json:"sp"`
	EP string `json:"ep"`
	GP string `json:"gp"`
	PP string `json:"pp"`
}

func NewCurrency() Currency {
	return Currency{CP: "0", SP: "0", EP: "0", GP: "0", PP: "0"}
}

// parseAmount reads a stored amount. Blank or non numeric text counts as 0.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Coins is the total number of coins across all denominations
func (c Currency) Coins() float64 {
	return parseAmount(c.CP) + parseAmount(c.SP) + parseAmount(c.EP) + parseAmount(c.GP) + parseAmount(c.PP)
}

// Weight is the carried weight of the purse in pounds
func (c Currency) Weight() float64 {
	return c.Coins() / coinsPerPound
}

// GoldValue converts the purse to gold pieces
func (c Currency) GoldValue() float64 {
	return parseAmount(c.CP)/100 + parseAmount(c.SP)/10 + parseAmount(c.EP)/2 + parseAmount(c.GP) + parseAmount(c.PP)*10
}
