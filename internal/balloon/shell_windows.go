//go:build windows

package balloon

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shell32              = windows.NewLazySystemDLL("shell32.dll")
	procShellNotifyIconW = shell32.NewProc("Shell_NotifyIconW")
)

// notifyIconData mirrors NOTIFYICONDATAW.
// https://learn.microsoft.com/en-us/windows/win32/api/shellapi/ns-shellapi-notifyicondataw
type notifyIconData struct {
	Size                       uint32
	Wnd                        windows.Handle
	ID, Flags, CallbackMessage uint32
	Icon                       windows.Handle
	Tip                        [128]uint16
	State, StateMask           uint32
	Info                       [BodyUnits]uint16
	Timeout                    uint32 // union with uVersion
	InfoTitle                  [TitleUnits]uint16
	InfoFlags                  uint32
	GuidItem                   windows.GUID
	BalloonIcon                windows.Handle
}

func newNotifyIconData(d *Descriptor) *notifyIconData {
	nid := &notifyIconData{
		Flags:     d.Flags,
		Info:      d.Info,
		InfoTitle: d.InfoTitle,
		InfoFlags: d.InfoFlags,
		GuidItem:  toGUID(d.ID),
	}
	nid.Size = uint32(unsafe.Sizeof(*nid))
	return nid
}

type platformShell struct{}

func (platformShell) NotifyIcon(kind Kind, d *Descriptor) error {
	if err := procShellNotifyIconW.Find(); err != nil {
		return fmt.Errorf("load Shell_NotifyIconW: %w", err)
	}

	nid := newNotifyIconData(d)
	res, _, callErr := procShellNotifyIconW.Call(
		uintptr(kind.Opcode()),
		uintptr(unsafe.Pointer(nid)),
	)
	if res != 0 {
		return nil
	}

	// Call captures GetLastError as a syscall.Errno.
	var errno syscall.Errno
	errors.As(callErr, &errno)
	return &PlatformError{Kind: kind, Code: uint32(errno)}
}

func (platformShell) NewID() (ID, error) {
	guid, err := windows.GenerateGUID()
	if err != nil {
		return ID{}, err
	}
	return fromGUID(guid), nil
}

func toGUID(id ID) windows.GUID {
	data1, data2, data3, data4 := guidFields(id)
	return windows.GUID{Data1: data1, Data2: data2, Data3: data3, Data4: data4}
}

func fromGUID(g windows.GUID) ID {
	return idFromFields(g.Data1, g.Data2, g.Data3, g.Data4)
}
