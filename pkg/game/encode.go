// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package game

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
)

// ============================================================================
// Binary File Format
// ============================================================================

// SURBINARY is the expected magic prefix of any binary position file.
var SURBINARY = [8]byte{'s', 'u', 'r', 'b', 'i', 'n', 'a', 'r'}

// BINFILE_MAJOR_VERSION givens the major version of the binary file format
// in use.  Versions with different major numbers are incompatible.
const BINFILE_MAJOR_VERSION uint16 = 1

// BINFILE_MINOR_VERSION givens the minor version of the binary file format
// in use.
const BINFILE_MINOR_VERSION uint16 = 0

// Header provides identifying information about the format of a binary
// position file.
type Header struct {
	// Expected to match SURBINARY
	MagicNumber [8]byte
	// Major version of this file
	MajorVersion uint16
	// Minor version of this file
	MinorVersion uint16
}

// node is the serialised shape of one position tree node.
type node struct {
	Left  []node `json:"l"`
	Right []node `json:"r"`
}

func toNode(x *PreGame) node {
	var n node
	//
	for _, xl := range x.left {
		n.Left = append(n.Left, toNode(xl))
	}
	//
	for _, xr := range x.right {
		n.Right = append(n.Right, toNode(xr))
	}
	//
	return n
}

func fromNode(n node) *PreGame {
	lefts := make([]*PreGame, len(n.Left))
	rights := make([]*PreGame, len(n.Right))
	//
	for i, l := range n.Left {
		lefts[i] = fromNode(l)
	}
	//
	for j, r := range n.Right {
		rights[j] = fromNode(r)
	}
	//
	return Make(lefts, rights)
}

// ToBytes encodes a position into the versioned binary format: a fixed
// header followed by a gob-encoded tree.
func ToBytes(x *PreGame) ([]byte, error) {
	var buffer bytes.Buffer
	//
	header := Header{SURBINARY, BINFILE_MAJOR_VERSION, BINFILE_MINOR_VERSION}
	encoder := gob.NewEncoder(&buffer)
	//
	if err := encoder.Encode(header); err != nil {
		return nil, err
	}
	//
	if err := encoder.Encode(toNode(x)); err != nil {
		return nil, err
	}
	//
	return buffer.Bytes(), nil
}

// FromBytes decodes a position from the versioned binary format, rejecting
// data with the wrong magic prefix or an incompatible major version.
func FromBytes(data []byte) (*PreGame, error) {
	var (
		header  Header
		n       node
		decoder = gob.NewDecoder(bytes.NewReader(data))
	)
	//
	if err := decoder.Decode(&header); err != nil {
		return nil, err
	}
	//
	if header.MagicNumber != SURBINARY {
		return nil, fmt.Errorf("not a binary position file")
	}
	//
	if header.MajorVersion != BINFILE_MAJOR_VERSION {
		return nil, fmt.Errorf("incompatible major version %d", header.MajorVersion)
	}
	//
	if err := decoder.Decode(&n); err != nil {
		return nil, err
	}
	//
	return fromNode(n), nil
}

// ToJson encodes the tree shape of a position as JSON, with Left and Right
// option lists keyed "l" and "r" respectively.
func ToJson(x *PreGame) ([]byte, error) {
	return json.Marshal(toNode(x))
}

// FromJson decodes a position from its JSON tree shape.
func FromJson(data []byte) (*PreGame, error) {
	var n node
	//
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	//
	return fromNode(n), nil
}
