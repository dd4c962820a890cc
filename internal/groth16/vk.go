// vk.go - Embedded Groth16 verifying key for the transact circuit.
//
// Produced by the trusted setup ceremony and baked into the binary; points
// are stored in the wire encoding of this package (big-endian coordinates,
// G2 components imaginary-first).

package groth16

// VerifyingKeyTransact verifies the seven-signal transact circuit: root,
// public amount, extData hash, two input nullifiers, two output commitments.
var VerifyingKeyTransact = &VerifyingKey{
	NrPubInputs: 7,

	AlphaG1: [64]byte{
		0x2d, 0x4d, 0x9a, 0xa7, 0xe3, 0x02, 0xd9, 0xdf, 0x41, 0x74, 0x9d, 0x55, 0x07, 0x94, 0x9d, 0x05,
		0xdb, 0xea, 0x33, 0xfb, 0xb1, 0x6c, 0x64, 0x3b, 0x22, 0xf5, 0x99, 0xa2, 0xbe, 0x6d, 0xf2, 0xe2,
		0x14, 0xbe, 0xdd, 0x50, 0x3c, 0x37, 0xce, 0xb0, 0x61, 0xd8, 0xec, 0x60, 0x20, 0x9f, 0xe3, 0x45,
		0xce, 0x89, 0x83, 0x0a, 0x19, 0x23, 0x03, 0x01, 0xf0, 0x76, 0xca, 0xff, 0x00, 0x4d, 0x19, 0x26,
	},

	BetaG2: [128]byte{
		0x09, 0x67, 0x03, 0x2f, 0xcb, 0xf7, 0x76, 0xd1, 0xaf, 0xc9, 0x85, 0xf8, 0x88, 0x77, 0xf1, 0x82,
		0xd3, 0x84, 0x80, 0xa6, 0x53, 0xf2, 0xde, 0xca, 0xa9, 0x79, 0x4c, 0xbc, 0x3b, 0xf3, 0x06, 0x0c,
		0x0e, 0x18, 0x78, 0x47, 0xad, 0x4c, 0x79, 0x83, 0x74, 0xd0, 0xd6, 0x73, 0x2b, 0xf5, 0x01, 0x84,
		0x7d, 0xd6, 0x8b, 0xc0, 0xe0, 0x71, 0x24, 0x1e, 0x02, 0x13, 0xbc, 0x7f, 0xc1, 0x3d, 0xb7, 0xab,
		0x30, 0x4c, 0xfb, 0xd1, 0xe0, 0x8a, 0x70, 0x4a, 0x99, 0xf5, 0xe8, 0x47, 0xd9, 0x3f, 0x8c, 0x3c,
		0xaa, 0xfd, 0xde, 0xc4, 0x6b, 0x7a, 0x0d, 0x37, 0x9d, 0xa6, 0x9a, 0x4d, 0x11, 0x23, 0x46, 0xa7,
		0x17, 0x39, 0xc1, 0xb1, 0xa4, 0x57, 0xa8, 0xc7, 0x31, 0x31, 0x23, 0xd2, 0x4d, 0x2f, 0x91, 0x92,
		0xf8, 0x96, 0xb7, 0xc6, 0x3e, 0xea, 0x05, 0xa9, 0xd5, 0x7f, 0x06, 0x54, 0x7a, 0xd0, 0xce, 0xc8,
	},

	GammaG2: [128]byte{
		0x19, 0x8e, 0x93, 0x93, 0x92, 0x0d, 0x48, 0x3a, 0x72, 0x60, 0xbf, 0xb7, 0x31, 0xfb, 0x5d, 0x25,
		0xf1, 0xaa, 0x49, 0x33, 0x35, 0xa9, 0xe7, 0x12, 0x97, 0xe4, 0x85, 0xb7, 0xae, 0xf3, 0x12, 0xc2,
		0x18, 0x00, 0xde, 0xef, 0x12, 0x1f, 0x1e, 0x76, 0x42, 0x6a, 0x00, 0x66, 0x5e, 0x5c, 0x44, 0x79,
		0x67, 0x43, 0x22, 0xd4, 0xf7, 0x5e, 0xda, 0xdd, 0x46, 0xde, 0xbd, 0x5c, 0xd9, 0x92, 0xf6, 0xed,
		0x09, 0x06, 0x89, 0xd0, 0x58, 0x5f, 0xf0, 0x75, 0xec, 0x9e, 0x99, 0xad, 0x69, 0x0c, 0x33, 0x95,
		0xbc, 0x4b, 0x31, 0x33, 0x70, 0xb3, 0x8e, 0xf3, 0x55, 0xac, 0xda, 0xdc, 0xd1, 0x22, 0x97, 0x5b,
		0x12, 0xc8, 0x5e, 0xa5, 0xdb, 0x8c, 0x6d, 0xeb, 0x4a, 0xab, 0x71, 0x80, 0x8d, 0xcb, 0x40, 0x8f,
		0xe3, 0xd1, 0xe7, 0x69, 0x0c, 0x43, 0xd3, 0x7b, 0x4c, 0xe6, 0xcc, 0x01, 0x66, 0xfa, 0x7d, 0xaa,
	},

	DeltaG2: [128]byte{
		0x24, 0x16, 0xee, 0x6a, 0x9f, 0xe2, 0xd7, 0xec, 0x40, 0xc8, 0x0a, 0x61, 0xae, 0x9d, 0x8a, 0x1b,
		0xc2, 0xd4, 0x96, 0x23, 0x3b, 0x6c, 0x27, 0x92, 0xee, 0x47, 0x59, 0xe7, 0xd6, 0xaa, 0x70, 0x75,
		0x00, 0xda, 0xd0, 0xbc, 0x65, 0x83, 0x3d, 0xe7, 0xc7, 0x1c, 0x5c, 0xad, 0x9b, 0x67, 0x43, 0x31,
		0x6c, 0x6a, 0x5d, 0x52, 0xeb, 0xf8, 0x7c, 0x97, 0x85, 0xf6, 0x24, 0x87, 0xba, 0xa0, 0xf4, 0x42,
		0x2c, 0xbf, 0x7c, 0xf6, 0x5e, 0xb3, 0xc4, 0x21, 0x33, 0x3d, 0x6e, 0x89, 0x85, 0x3f, 0xd0, 0x1a,
		0x3f, 0xca, 0x90, 0xf4, 0xcd, 0xef, 0x9f, 0x11, 0x99, 0xc8, 0xc6, 0xdd, 0x5a, 0xff, 0x83, 0x8d,
		0x1c, 0x1e, 0x69, 0xc6, 0xf4, 0xee, 0xd2, 0xd0, 0xf3, 0x34, 0x56, 0x03, 0xa5, 0x28, 0xfe, 0xb5,
		0x4c, 0x60, 0x65, 0x3c, 0x1b, 0xbb, 0xeb, 0x31, 0x1f, 0x32, 0xde, 0x83, 0x3f, 0x8a, 0xa0, 0x06,
	},

	IC: [][64]byte{
		{
			0x23, 0x79, 0x17, 0xa2, 0x20, 0x65, 0xf7, 0x73, 0xb1, 0xc7, 0x32, 0x9e, 0x03, 0x3c, 0xbc, 0x5f,
			0x5b, 0x1d, 0x79, 0xd2, 0x35, 0x9b, 0xf5, 0xe2, 0xcb, 0xf5, 0xba, 0xa7, 0x27, 0x20, 0xa0, 0xca,
			0x16, 0x16, 0xa8, 0xa0, 0x7d, 0x2d, 0x38, 0x2d, 0x84, 0xd6, 0x14, 0xc6, 0x4c, 0x51, 0x02, 0x96,
			0x00, 0x3d, 0x56, 0x82, 0x69, 0xaa, 0x8d, 0xf4, 0x0d, 0xb4, 0x51, 0x4f, 0x12, 0xa6, 0x81, 0x81,
		},
		{
			0x0d, 0x94, 0x3f, 0xea, 0xb9, 0x2a, 0x03, 0x9f, 0x7f, 0x18, 0xf0, 0xc8, 0x48, 0x18, 0xb0, 0x07,
			0xb5, 0xd7, 0xd4, 0x34, 0x0d, 0xa0, 0xac, 0xb6, 0xb1, 0x16, 0xeb, 0x04, 0xad, 0xe5, 0x19, 0x6c,
			0x2e, 0x3d, 0xe9, 0xb8, 0xb5, 0x98, 0x84, 0x67, 0xfc, 0x64, 0xe5, 0x90, 0xd9, 0x24, 0x27, 0xfe,
			0x43, 0xed, 0x46, 0xd6, 0xc0, 0xe7, 0x8c, 0x56, 0x71, 0x28, 0x0b, 0x58, 0x0c, 0x96, 0x9d, 0xe2,
		},
		{
			0x1a, 0x69, 0x96, 0xcc, 0xb2, 0xca, 0x1a, 0x3e, 0x27, 0xb2, 0xb3, 0xe1, 0x85, 0x8c, 0x8a, 0x28,
			0x3c, 0xbb, 0x63, 0x39, 0xed, 0x07, 0xcb, 0x9f, 0xfb, 0x67, 0x2e, 0xcf, 0xdb, 0xba, 0x13, 0x40,
			0x00, 0x2a, 0x49, 0x05, 0x4c, 0x30, 0x73, 0x50, 0x60, 0x1d, 0xc5, 0xd5, 0xe4, 0xf0, 0x07, 0x90,
			0x8c, 0x03, 0x7f, 0x59, 0x57, 0xf7, 0x62, 0x99, 0xae, 0x51, 0x07, 0x9e, 0xb7, 0x50, 0x8b, 0x93,
		},
		{
			0x06, 0xf9, 0x58, 0x68, 0x38, 0x4a, 0x90, 0x88, 0x81, 0xb0, 0x46, 0xd8, 0x12, 0x93, 0x4e, 0x8d,
			0x18, 0x5d, 0x5f, 0xf2, 0x44, 0x31, 0xd7, 0x98, 0xf6, 0x6e, 0x97, 0xf1, 0xe4, 0x3b, 0xe6, 0xbb,
			0x1d, 0x38, 0xba, 0xd2, 0xc8, 0xbe, 0x5d, 0x40, 0x6e, 0x00, 0x37, 0x69, 0xa6, 0x68, 0xd0, 0x2e,
			0x52, 0x51, 0x92, 0x88, 0xb3, 0x63, 0x68, 0xe8, 0x63, 0xf8, 0xa2, 0x89, 0x15, 0xd9, 0xdc, 0x4d,
		},
		{
			0x22, 0xa3, 0xaa, 0x5b, 0xfe, 0xd7, 0xdc, 0xaf, 0x47, 0x43, 0x38, 0x2b, 0xb2, 0x30, 0x5c, 0x07,
			0xaa, 0x7c, 0xc9, 0xe8, 0xcf, 0xca, 0x86, 0x50, 0x7b, 0x1f, 0x1a, 0xec, 0x4c, 0xaf, 0xba, 0x9b,
			0x2e, 0xfd, 0xec, 0xaa, 0x0c, 0xf8, 0x1e, 0x7f, 0x33, 0x88, 0x64, 0x33, 0x22, 0x07, 0xda, 0x15,
			0x85, 0x33, 0x94, 0xeb, 0x5c, 0xd2, 0x75, 0x86, 0x79, 0x4e, 0xa6, 0x5a, 0x0a, 0xc2, 0xc1, 0x94,
		},
		{
			0x24, 0xb4, 0x52, 0xce, 0xe7, 0xc3, 0x56, 0x29, 0x6a, 0x91, 0x15, 0x6b, 0xea, 0xe9, 0x8b, 0xe1,
			0x36, 0x83, 0xa5, 0xba, 0x4d, 0x7f, 0xb4, 0x92, 0xf0, 0xbc, 0x40, 0x25, 0x34, 0x60, 0x0d, 0xa3,
			0x18, 0xa3, 0xb4, 0xc2, 0x24, 0xbe, 0xb8, 0xfa, 0x86, 0xd3, 0xbd, 0x51, 0xe4, 0x7d, 0x04, 0x15,
			0x14, 0x14, 0xff, 0x1a, 0x8e, 0x69, 0xe6, 0xae, 0xf4, 0x79, 0xb8, 0x41, 0x09, 0x28, 0x4d, 0x94,
		},
		{
			0x0b, 0x18, 0x0c, 0xc9, 0xc9, 0xd9, 0xb3, 0xa3, 0x06, 0xa7, 0x25, 0x28, 0xac, 0xec, 0x51, 0xf6,
			0x1f, 0x26, 0x70, 0x11, 0x64, 0xa3, 0x6f, 0x39, 0x1f, 0xc6, 0xe7, 0x3f, 0xe0, 0xb2, 0x26, 0x4c,
			0x0c, 0x9a, 0xa0, 0x29, 0x3a, 0xb1, 0x05, 0xc5, 0xdf, 0x71, 0x0c, 0x4b, 0xed, 0xef, 0x09, 0x28,
			0xb2, 0x2c, 0xde, 0x82, 0x7d, 0xdd, 0x8e, 0xf1, 0xd5, 0x3a, 0x83, 0xf2, 0x78, 0x6c, 0xd5, 0xa3,
		},
		{
			0x01, 0x53, 0x86, 0xbb, 0x1e, 0x31, 0x3d, 0x76, 0xce, 0x6e, 0xe1, 0xc0, 0x9b, 0x65, 0x9b, 0xcc,
			0xca, 0x31, 0xe5, 0x29, 0x94, 0xe8, 0x18, 0x2f, 0x55, 0x2f, 0x6c, 0x63, 0x71, 0x0c, 0xd1, 0x58,
			0x29, 0x90, 0xb9, 0x1e, 0xb0, 0x2e, 0xbe, 0xf4, 0x94, 0x97, 0x8e, 0x40, 0x2d, 0x16, 0x10, 0x11,
			0x30, 0x7a, 0xb7, 0x51, 0xbb, 0x12, 0x8e, 0x0a, 0xe6, 0x4e, 0x06, 0x2a, 0xf5, 0x8c, 0xa6, 0x79,
		},
	},
}
