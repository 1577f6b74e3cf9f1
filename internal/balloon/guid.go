package balloon

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// ID identifies one notification between its add and delete calls.
// The zero value means no identifier was supplied.
type ID = uuid.UUID

// guidFields splits id into the Data1..Data4 fields of a Windows GUID so
// that the GUID and the ID print the same.
func guidFields(id ID) (data1 uint32, data2, data3 uint16, data4 [8]byte) {
	data1 = binary.BigEndian.Uint32(id[0:4])
	data2 = binary.BigEndian.Uint16(id[4:6])
	data3 = binary.BigEndian.Uint16(id[6:8])
	copy(data4[:], id[8:16])
	return data1, data2, data3, data4
}

func idFromFields(data1 uint32, data2, data3 uint16, data4 [8]byte) ID {
	var id ID
	binary.BigEndian.PutUint32(id[0:4], data1)
	binary.BigEndian.PutUint16(id[4:6], data2)
	binary.BigEndian.PutUint16(id[6:8], data3)
	copy(id[8:16], data4[:])
	return id
}
