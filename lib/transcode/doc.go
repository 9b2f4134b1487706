// Copyright 2026 The Mdwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package transcode maps between data-model values and peer formats:
// JSON (with JSONC accepted on input), YAML, and CBOR.
//
// The mapping is lossy wherever the peer format is less expressive
// than the data model, and deliberately so:
//
//   - Unit, None, and unit structs all become null (nil in CBOR);
//     null always reads back as Unit.
//   - Some is transparent: the inner value is written directly.
//   - Newtype structs and tuple structs are transparent the same way.
//   - Unit variants become the string "Enum::Variant". Other variants
//     use external tagging: a single-entry object {"Variant": payload}
//     on the way out only; reading does not reconstruct variants.
//   - Bytes become base64 strings in JSON, !!binary scalars in YAML,
//     and native byte strings in CBOR.
//   - JSON object keys must be scalars (strings, chars, integers,
//     bools); a composite map key is an error. CBOR shares the
//     restriction because the converter passes through Go maps. YAML
//     accepts composite keys.
//   - CBOR maps carry no usable order: writing sorts keys (Core
//     Deterministic Encoding) and reading sorts entries to keep the
//     conversion deterministic.
//
// Reading builds only Unit, Bool, Integer (64-bit), Float (64-bit),
// String, Bytes, Seq, and Map values; the richer model variants exist
// for wire documents produced by other serde implementations.
package transcode
