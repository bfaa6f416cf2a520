package memory_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/leg16/memory"
)

type bufferFile struct {
	bytes.Buffer
	closed bool
}

func (bf *bufferFile) Close() error {
	bf.closed = true
	return nil
}

type brokenFile struct{}

func (brokenFile) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func (brokenFile) Close() error {
	return nil
}

var _ = Describe("Marshal", func() {
	var (
		mockCtrl *gomock.Controller
		filesys  *MockCreateFS
		img      *memory.Image
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		filesys = NewMockCreateFS(mockCtrl)
		img = &memory.Image{}
		img.Store(0xc189)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should write the scratch file before renaming it into place", func() {
		file := &bufferFile{}

		gomock.InOrder(
			filesys.EXPECT().Create("out.hex.tmp").Return(file, nil),
			filesys.EXPECT().Rename("out.hex.tmp", "out.hex").Return(nil),
		)

		Expect(img.Marshal(filesys, "out.hex")).To(Succeed())
		Expect(file.closed).To(BeTrue())

		text, _ := img.MarshalText()
		Expect(file.String()).To(Equal(string(text)))
	})

	It("should remove the scratch file when writing fails", func() {
		gomock.InOrder(
			filesys.EXPECT().Create("out.hex.tmp").Return(brokenFile{}, nil),
			filesys.EXPECT().Remove("out.hex.tmp").Return(nil),
		)

		Expect(img.Marshal(filesys, "out.hex")).ToNot(Succeed())
	})

	It("should remove the scratch file when the rename fails", func() {
		gomock.InOrder(
			filesys.EXPECT().Create("out.hex.tmp").Return(&bufferFile{}, nil),
			filesys.EXPECT().Rename("out.hex.tmp", "out.hex").Return(os.ErrPermission),
			filesys.EXPECT().Remove("out.hex.tmp").Return(nil),
		)

		err := img.Marshal(filesys, "out.hex")
		Expect(errors.Is(err, os.ErrPermission)).To(BeTrue())
	})

	It("should not touch anything when the scratch file cannot be created", func() {
		filesys.EXPECT().Create("out.hex.tmp").Return(nil, os.ErrPermission)

		err := img.Marshal(filesys, "out.hex")
		Expect(errors.Is(err, os.ErrPermission)).To(BeTrue())
	})
})

var _ = Describe("DirFS", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "leg16-memory")
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	It("should replace an existing listing", func() {
		out := filepath.Join(dir, "out.hex")
		Expect(os.WriteFile(out, []byte("stale\n"), 0644)).To(Succeed())

		img := &memory.Image{}
		img.Store(0x5059)
		Expect(img.Marshal(memory.DirFS(dir), "out.hex")).To(Succeed())

		data, err := os.ReadFile(out)
		Expect(err).ToNot(HaveOccurred())
		text, _ := img.MarshalText()
		Expect(string(data)).To(Equal(string(text)))

		_, err = os.Stat(out + memory.TEMP_SUFFIX)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})
