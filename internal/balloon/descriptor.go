package balloon

// NOTIFYICONDATAW flag values used by this package.
const (
	flagInfo uint32 = 0x00000010 // NIF_INFO
	flagGUID uint32 = 0x00000020 // NIF_GUID
	infoNone uint32 = 0x00000000 // NIIF_NONE
)

// Descriptor holds the fields of NOTIFYICONDATAW that this package sets.
// The platform backend copies it into the native record.
type Descriptor struct {
	Flags     uint32
	InfoTitle [TitleUnits]uint16
	Info      [BodyUnits]uint16
	InfoFlags uint32
	ID        ID
}

// Title returns the stored title text.
func (d *Descriptor) Title() string {
	return DecodeText(d.InfoTitle[:])
}

// Body returns the stored body text.
func (d *Descriptor) Body() string {
	return DecodeText(d.Info[:])
}

func newAddDescriptor(req Request, id ID) (d *Descriptor, titleN, bodyN int) {
	d = &Descriptor{
		Flags:     flagInfo | flagGUID,
		InfoFlags: infoNone,
		ID:        id,
	}
	titleN = EncodeText(d.InfoTitle[:], req.Title)
	bodyN = EncodeText(d.Info[:], req.Body)
	return d, titleN, bodyN
}

func newDeleteDescriptor(id ID) *Descriptor {
	return &Descriptor{
		Flags: flagGUID,
		ID:    id,
	}
}
