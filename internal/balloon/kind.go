package balloon

import "fmt"

// Kind is the operation requested of the shell notification service.
type Kind int

const (
	KindAdd Kind = iota
	KindDelete
)

// Shell_NotifyIconW message values.
const (
	nimAdd    uint32 = 0x00000000
	nimDelete uint32 = 0x00000002
)

// Opcode returns the NIM_* value passed to Shell_NotifyIconW.
func (k Kind) Opcode() uint32 {
	switch k {
	case KindDelete:
		return nimDelete
	default:
		return nimAdd
	}
}

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindDelete:
		return "delete"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
