// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// WizardData carries the embedded wizard bitmaps and the helper DLLs some
// releases ship alongside them. Images are raw BMP blobs.
type WizardData struct {
	Images          [][]byte `json:"-" yaml:"-"`
	SmallImages     [][]byte `json:"-" yaml:"-"`
	DecompressorDLL []byte   `json:"-" yaml:"-"`
	DecryptDLL      []byte   `json:"-" yaml:"-"`
}

func (fr *fieldReader) readImageSet() ([][]byte, error) {
	count := uint32(1)
	if fr.caps.WizardImageCount {
		n, err := fr.readU32()
		if err != nil {
			return nil, err
		}
		count = n
	}

	images := make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		img, err := fr.readBlob()
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	// Single-image layouts store an empty blob when no image was set.
	if !fr.caps.WizardImageCount && len(images) == 1 && len(images[0]) == 0 {
		images = nil
	}

	return images, nil
}

func readWizardData(fr *fieldReader, h *Header) (WizardData, error) {
	var w WizardData
	var err error

	if w.Images, err = fr.readImageSet(); err != nil {
		return w, err
	}

	if fr.caps.WizardSmallImages {
		if w.SmallImages, err = fr.readImageSet(); err != nil {
			return w, err
		}
	}

	needsDecompressor := h.Compression == CompressionBZip2 ||
		(h.Compression == CompressionLZMA1 && fr.version.Version == ver(4, 1, 5)) ||
		(h.Compression == CompressionZlib && fr.version.atLeast(ver(4, 2, 6)))
	if needsDecompressor {
		if w.DecompressorDLL, err = fr.readBlob(); err != nil {
			return w, err
		}
	}

	if h.Flags.Has(FlagEncryptionUsed) {
		if w.DecryptDLL, err = fr.readBlob(); err != nil {
			return w, err
		}
	}

	return w, nil
}
