package crypto

const (
	// PaddingOverhead is the per-block byte cost of PKCS#1 v1.5 type 1
	// padding: two marker bytes, at least eight filler bytes and a zero
	// separator. A key of k bytes carries at most k-PaddingOverhead
	// payload bytes per block.
	PaddingOverhead = 11

	// pemLineWidth is the wrap width used when reassembling bare base64
	// key material into PEM form.
	pemLineWidth = 64
)
