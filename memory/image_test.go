package memory_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/leg16/isa"
	"github.com/ezrec/leg16/memory"
)

func zeroRow(address int) string {
	return fmt.Sprintf("%02x:", address) + strings.Repeat(" 0000", memory.ROW_WORDS)
}

var _ = Describe("Image", func() {
	var img *memory.Image

	BeforeEach(func() {
		img = &memory.Image{}
	})

	It("should render an empty image as a full zero listing", func() {
		text, err := img.MarshalText()
		Expect(err).ToNot(HaveOccurred())

		lines := strings.Split(strings.TrimSuffix(string(text), "\n"), "\n")
		Expect(lines).To(HaveLen(17))
		Expect(lines[0]).To(Equal(memory.HEADER))
		for row := range memory.ROWS {
			Expect(lines[1+row]).To(Equal(zeroRow(row * memory.ROW_WORDS)))
		}
		Expect(lines[16]).To(HavePrefix("f0: "))
	})

	It("should store words at sequential addresses", func() {
		address, err := img.Store(0xc189)
		Expect(err).ToNot(HaveOccurred())
		Expect(address).To(Equal(0))

		address, err = img.Store(0x5059)
		Expect(err).ToNot(HaveOccurred())
		Expect(address).To(Equal(1))
		Expect(img.Len()).To(Equal(2))

		text, err := img.MarshalText()
		Expect(err).ToNot(HaveOccurred())
		Expect(string(text)).To(ContainSubstring(
			"\n00: c189 5059 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000 0000\n10: "))
	})

	It("should refuse a 257th word without changing the image", func() {
		for n := range memory.WORDS {
			_, err := img.Store(isa.Word(n + 1))
			Expect(err).ToNot(HaveOccurred())
		}
		before := img.Words

		_, err := img.Store(0xffff)
		Expect(errors.Is(err, memory.ErrFull)).To(BeTrue())
		Expect(img.Words).To(Equal(before))
		Expect(img.Len()).To(Equal(memory.WORDS))
	})

	It("should iterate rows by start address", func() {
		var addrs []int
		for address, words := range img.Rows() {
			Expect(words).To(HaveLen(memory.ROW_WORDS))
			addrs = append(addrs, address)
		}
		Expect(addrs).To(HaveLen(memory.ROWS))
		Expect(addrs[1]).To(Equal(0x10))
		Expect(addrs[15]).To(Equal(0xf0))
	})

	It("should write the same text as MarshalText", func() {
		img.Store(0x1234)

		var buf bytes.Buffer
		n, err := img.WriteTo(&buf)
		Expect(err).ToNot(HaveOccurred())

		text, _ := img.MarshalText()
		Expect(buf.String()).To(Equal(string(text)))
		Expect(n).To(Equal(int64(len(text))))
	})

	Context("Unmarshal", func() {
		It("should read back a rendered listing", func() {
			img.Store(0xc189)
			img.Store(0)
			img.Store(0x5059)
			text, _ := img.MarshalText()

			loaded := &memory.Image{}
			Expect(loaded.Unmarshal(bytes.NewReader(text))).To(Succeed())
			Expect(loaded.Words).To(Equal(img.Words))
			Expect(loaded.Len()).To(Equal(3))
		})

		It("should reject a listing without the header", func() {
			err := img.Unmarshal(strings.NewReader(zeroRow(0) + "\n"))
			Expect(errors.Is(err, memory.ErrListingHeader)).To(BeTrue())

			err = img.Unmarshal(strings.NewReader(""))
			Expect(errors.Is(err, memory.ErrListingHeader)).To(BeTrue())
		})

		It("should reject rows out of sequence", func() {
			text := memory.HEADER + "\n" + zeroRow(0x10) + "\n"
			err := img.Unmarshal(strings.NewReader(text))
			Expect(errors.Is(err, memory.ErrListingAddress)).To(BeTrue())

			var el *memory.ErrListing
			Expect(errors.As(err, &el)).To(BeTrue())
			Expect(el.LineNo).To(Equal(2))
		})

		It("should reject short rows and bad words", func() {
			text := memory.HEADER + "\n00: 0000 0000\n"
			err := img.Unmarshal(strings.NewReader(text))
			Expect(errors.Is(err, memory.ErrListingRow)).To(BeTrue())

			text = memory.HEADER + "\n00:" + strings.Repeat(" zzzz", memory.ROW_WORDS) + "\n"
			err = img.Unmarshal(strings.NewReader(text))
			var ewt isa.ErrWordText
			Expect(errors.As(err, &ewt)).To(BeTrue())
		})

		It("should reject missing and extra rows", func() {
			text := memory.HEADER + "\n" + zeroRow(0) + "\n"
			err := img.Unmarshal(strings.NewReader(text))
			Expect(errors.Is(err, memory.ErrListingShort)).To(BeTrue())

			full, _ := img.MarshalText()
			err = img.Unmarshal(strings.NewReader(string(full) + zeroRow(0) + "\n"))
			Expect(errors.Is(err, memory.ErrListingExtra)).To(BeTrue())
		})
	})
})
