package calc

// PerPerson divides a total evenly across a party.
// A party size below one is treated as a party of one, so the function never
// divides by zero and a disabled split is the same as dining alone.
func PerPerson(total float64, partySize int) float64 {
	if partySize < 1 {
		partySize = 1
	}
	return total / float64(partySize)
}
