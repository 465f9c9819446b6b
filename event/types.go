package event

// Kind identifies the effect a scheduled event has on a node's
// compartment vector. The numeric values match the core boundary's
// wire encoding: 0=EXIT, 1=ENTER, 2=INTERNAL_TRANSFER,
// 3=EXTERNAL_TRANSFER.
type Kind int

const (
	EXIT Kind = iota
	ENTER
	INTERNAL_TRANSFER
	EXTERNAL_TRANSFER
)

// String renders a Kind for log lines and test failure messages.
func (k Kind) String() string {
	switch k {
	case EXIT:
		return "EXIT"
	case ENTER:
		return "ENTER"
	case INTERNAL_TRANSFER:
		return "INTERNAL_TRANSFER"
	case EXTERNAL_TRANSFER:
		return "EXTERNAL_TRANSFER"
	default:
		return "UNDEFINED"
	}
}

// Event is one scheduled event: (kind, time, node, dest, n, proportion,
// select, shift). Dest and Shift are only meaningful for
// EXTERNAL_TRANSFER and INTERNAL_TRANSFER/EXTERNAL_TRANSFER
// respectively; zero values elsewhere are ignored.
//
// Events with the same (Time, Node) are applied in the order they
// appear in the input stream — arrival order is significant and must
// be preserved by any code that reorders or merges event streams.
type Event struct {
	Kind       Kind
	Time       int
	Node       int
	Dest       int
	N          int
	Proportion float64
	Select     int
	Shift      int
}

// count returns the number of individuals this event requests,
// applying the n-or-proportion rule of the event splitter: an
// absolute count if N > 0, otherwise floor(Proportion * total) by
// truncation.
func (e Event) count(total int) int {
	if e.N > 0 {
		return e.N
	}
	return int(e.Proportion * float64(total))
}
