package ism330dhcx

import "fmt"

// mockTransport emulates the register file for driver tests: the three
// register banks behind FUNC_CFG_ACCESS, the self-clearing SW_RESET bit,
// address auto-increment on bursts, and the paged-memory window. Every
// write is appended to trace as "bank/reg=value" so tests can assert
// ordering.
type mockTransport struct {
	user  [128]uint8
	emb   [128]uint8
	shub  [128]uint8
	pages map[uint16]uint8 // paged memory, page<<8|offset

	pageOffset uint16 // internal paged-memory pointer

	trace []string
	// failOn makes the transport fail exactly the nth register access
	// (1-based); later accesses succeed again.
	failOn int
	ops    int
}

func newMockTransport() *mockTransport {
	m := &mockTransport{pages: map[uint16]uint8{}}
	m.user[regWhoAmI] = ID
	return m
}

func (m *mockTransport) bank() *[128]uint8 {
	switch m.user[regFuncCfgAccess] {
	case funcCfgEmbAccess:
		return &m.emb
	case funcCfgShubAccess:
		return &m.shub
	}
	return &m.user
}

func (m *mockTransport) bankName() string {
	switch m.user[regFuncCfgAccess] {
	case funcCfgEmbAccess:
		return "emb"
	case funcCfgShubAccess:
		return "shub"
	}
	return "user"
}

func (m *mockTransport) ReadRegister(reg uint8, buf []byte) error {
	m.ops++
	if m.failOn != 0 && m.ops == m.failOn {
		return fmt.Errorf("mock transport failure")
	}
	b := m.bank()
	for i := range buf {
		r := reg + uint8(i)
		if b == &m.emb && r == embPageValue {
			buf[i] = m.pages[m.pageOffset]
			m.pageOffset++
			continue
		}
		buf[i] = b[r]
	}
	return nil
}

func (m *mockTransport) WriteRegister(reg uint8, buf []byte) error {
	m.ops++
	if m.failOn != 0 && m.ops == m.failOn {
		return fmt.Errorf("mock transport failure")
	}
	for i, v := range buf {
		r := reg + uint8(i)
		m.writeByte(r, v)
	}
	return nil
}

func (m *mockTransport) writeByte(reg, v uint8) {
	// Bank select is reachable from any bank.
	if reg == regFuncCfgAccess {
		m.user[reg] = v
		m.trace = append(m.trace, fmt.Sprintf("user/%02X=%02X", reg, v))
		return
	}
	b := m.bank()
	m.trace = append(m.trace, fmt.Sprintf("%s/%02X=%02X", m.bankName(), reg, v))
	if b == &m.user && reg == regCtrl3C {
		// SW_RESET and BOOT self-clear.
		m.user[reg] = v &^ (ctrl3SWReset | ctrl3Boot)
		return
	}
	if b == &m.emb {
		switch reg {
		case embPageSel:
			m.emb[reg] = v
			m.pageOffset = uint16(v>>4)<<8 | m.pageOffset&0xFF
			return
		case embPageAddress:
			m.emb[reg] = v
			m.pageOffset = m.pageOffset&0xF00 | uint16(v)
			return
		case embPageValue:
			m.pages[m.pageOffset] = v
			m.pageOffset++
			return
		}
	}
	b[reg] = v
}

// dev returns an initialized device on a fresh mock.
func testDev() (*Dev, *mockTransport) {
	m := newMockTransport()
	d, err := New(m, nil)
	if err != nil {
		panic(err)
	}
	m.trace = nil
	m.ops = 0
	return d, m
}
