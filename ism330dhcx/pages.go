package ism330dhcx

import "encoding/binary"

// Paged memory access. The advanced-features address space (pedometer
// configuration, magnetometer calibration, FSM program storage) is reached
// indirectly: select a 256-byte page in PAGE_SEL, set the offset in
// PAGE_ADDRESS, then move bytes through the PAGE_VALUE window while the
// matching PAGE_RW direction bit is set. Addresses carry the page number
// in the high byte and the offset in the low byte.

// writePagedBytes writes data starting at the paged address, rolling over
// to the next page when the 8-bit offset wraps. PAGE_RW and the register
// bank are restored even when a transfer fails; the first error wins.
func (d *Dev) writePagedBytes(addr uint16, data []byte) error {
	return d.withBank(bankEmbedded, func() error {
		if err := d.updateReg(embPageRW, pageRWRead|pageRWWrite, pageRWWrite); err != nil {
			return err
		}
		err := d.pagedTransfer(addr, data, func(b byte) error {
			return d.writeReg(embPageValue, b)
		})
		if rerr := d.updateReg(embPageRW, pageRWRead|pageRWWrite, 0); err == nil {
			err = rerr
		}
		return err
	})
}

// readPagedBytes reads len(buf) bytes starting at the paged address.
func (d *Dev) readPagedBytes(addr uint16, buf []byte) error {
	return d.withBank(bankEmbedded, func() error {
		if err := d.updateReg(embPageRW, pageRWRead|pageRWWrite, pageRWRead); err != nil {
			return err
		}
		i := 0
		err := d.pagedTransfer(addr, buf, func(byte) error {
			v, err := d.readReg(embPageValue)
			if err != nil {
				return err
			}
			buf[i] = v
			i++
			return nil
		})
		if rerr := d.updateReg(embPageRW, pageRWRead|pageRWWrite, 0); err == nil {
			err = rerr
		}
		return err
	})
}

// pagedTransfer walks the page/offset registers across the span of data,
// invoking move for each byte. The caller has already selected the
// embedded bank and the transfer direction.
func (d *Dev) pagedTransfer(addr uint16, data []byte, move func(byte) error) error {
	page := uint8(addr>>8) & 0x0F
	offset := uint8(addr)
	if err := d.updateReg(embPageSel, pageSelMask|pageSelFixed, page<<4|pageSelFixed); err != nil {
		return err
	}
	if err := d.writeReg(embPageAddress, offset); err != nil {
		return err
	}
	for i, b := range data {
		if err := move(b); err != nil {
			return err
		}
		if i == len(data)-1 {
			break
		}
		offset++
		if offset == 0 {
			// Crossed a 256-byte page boundary.
			page++
			if err := d.updateReg(embPageSel, pageSelMask|pageSelFixed, page<<4|pageSelFixed); err != nil {
				return err
			}
			if err := d.writeReg(embPageAddress, offset); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dev) writePagedByte(addr uint16, v uint8) error {
	return d.writePagedBytes(addr, []byte{v})
}

func (d *Dev) readPagedByte(addr uint16) (uint8, error) {
	var b [1]byte
	if err := d.readPagedBytes(addr, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// updatePagedByte read-modify-writes a paged byte.
func (d *Dev) updatePagedByte(addr uint16, mask, value uint8) error {
	v, err := d.readPagedByte(addr)
	if err != nil {
		return err
	}
	v = (v &^ mask) | (value & mask)
	return d.writePagedByte(addr, v)
}

// WriteFSMPrograms stores FSM program bytes starting at the given paged
// address. Declare the program count with SetFSMNumberOfPrograms and the
// base with SetFSMStartAddress.
func (d *Dev) WriteFSMPrograms(addr uint16, program []byte) error {
	return d.writePagedBytes(addr, program)
}

// SetMagSensitivity writes the external magnetometer sensitivity used by
// the embedded blocks (page 1, 16-bit little-endian).
func (d *Dev) SetMagSensitivity(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return d.writePagedBytes(pgMagSensitivityL, b[:])
}

// MagSensitivity reads back the external magnetometer sensitivity.
func (d *Dev) MagSensitivity() (uint16, error) {
	var b [2]byte
	if err := d.readPagedBytes(pgMagSensitivityL, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// SetMagOffsets writes the hard-iron offsets applied to the external
// magnetometer data feeding the embedded blocks.
func (d *Dev) SetMagOffsets(x, y, z int16) error {
	var b [6]byte
	binary.LittleEndian.PutUint16(b[0:2], uint16(x))
	binary.LittleEndian.PutUint16(b[2:4], uint16(y))
	binary.LittleEndian.PutUint16(b[4:6], uint16(z))
	return d.writePagedBytes(pgMagOffXL, b[:])
}

// MagOffsets reads back the hard-iron offsets.
func (d *Dev) MagOffsets() (x, y, z int16, err error) {
	var b [6]byte
	if err = d.readPagedBytes(pgMagOffXL, b[:]); err != nil {
		return 0, 0, 0, err
	}
	x = int16(binary.LittleEndian.Uint16(b[0:2]))
	y = int16(binary.LittleEndian.Uint16(b[2:4]))
	z = int16(binary.LittleEndian.Uint16(b[4:6]))
	return x, y, z, nil
}

// SetMagSoftIron writes the 6 unique elements of the symmetric soft-iron
// correction matrix (XX, XY, XZ, YY, YZ, ZZ).
func (d *Dev) SetMagSoftIron(m [6]int16) error {
	var b [12]byte
	for i, v := range m {
		binary.LittleEndian.PutUint16(b[2*i:2*i+2], uint16(v))
	}
	return d.writePagedBytes(pgMagSIXXL, b[:])
}
