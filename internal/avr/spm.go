package avr

import (
	"fmt"

	"github.com/retroenv/avrlift/internal/esil"
)

// pageSizeBits returns the model's flash page size exponent.
func (d *Decoder) pageSizeBits() (uint64, error) {
	c, err := d.registry.ConstByName(d.model, KindParameter, "page_size")
	if err != nil {
		return 0, fmt.Errorf("resolving page size: %w", err)
	}
	return uint64(c.MaskedValue()), nil
}

// customSpmPageErase implements the SPM_PAGE_ERASE operation: it pops the
// target address and writes 0xff over the enclosing flash page.
func (d *Decoder) customSpmPageErase(e esil.Evaluator) error {
	addr, err := e.Pop()
	if err != nil {
		return fmt.Errorf("popping target address: %w", err)
	}

	bits, err := d.pageSizeBits()
	if err != nil {
		return err
	}

	// align base address to the page size
	addr &= ^(uint64(1)<<bits - 1)

	erased := []byte{0xff}
	for i := uint64(0); i < uint64(1)<<bits; i++ {
		if err := e.MemWrite((addr+i)&uint64(d.model.PCMask()), erased); err != nil {
			return fmt.Errorf("erasing page byte: %w", err)
		}
	}
	return nil
}

// customSpmPageFill implements the SPM_PAGE_FILL operation: it pops the
// target address and the r0/r1 word and writes the word into the temporary
// page buffer.
func (d *Decoder) customSpmPageFill(e esil.Evaluator) error {
	addr, err := e.Pop()
	if err != nil {
		return fmt.Errorf("popping target address: %w", err)
	}
	r0, err := e.Pop()
	if err != nil {
		return fmt.Errorf("popping r0: %w", err)
	}
	r1, err := e.Pop()
	if err != nil {
		return fmt.Errorf("popping r1: %w", err)
	}

	bits, err := d.pageSizeBits()
	if err != nil {
		return err
	}

	// align and crop base address, keeping the word offset inside the page
	addr &= (uint64(1)<<bits - 1) ^ 1

	if err := e.MemWrite(addr, []byte{byte(r0)}); err != nil {
		return fmt.Errorf("filling page buffer: %w", err)
	}
	if err := e.MemWrite(addr+1, []byte{byte(r1)}); err != nil {
		return fmt.Errorf("filling page buffer: %w", err)
	}
	return nil
}

// customSpmPageWrite implements the SPM_PAGE_WRITE operation: it pops the
// target address and commits the temporary page buffer to the enclosing
// flash page. The page is read completely before any byte is written so a
// failed read never leaves a half written page.
func (d *Decoder) customSpmPageWrite(e esil.Evaluator) error {
	addr, err := e.Pop()
	if err != nil {
		return fmt.Errorf("popping target address: %w", err)
	}

	bits, err := d.pageSizeBits()
	if err != nil {
		return err
	}

	tmpPage, err := e.RegRead("_page")
	if err != nil {
		return fmt.Errorf("reading temporary page base: %w", err)
	}

	// align base address to the page size
	addr &= ^(uint64(1)<<bits - 1) & uint64(d.model.PCMask())

	page := make([]byte, 1<<bits)
	if err := e.MemRead(tmpPage, page); err != nil {
		return fmt.Errorf("reading temporary page: %w", err)
	}
	if err := e.MemWrite(addr, page); err != nil {
		return fmt.Errorf("writing flash page: %w", err)
	}
	return nil
}
