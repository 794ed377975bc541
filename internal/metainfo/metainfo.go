/*
 * Copyright 2024 Eduardo Antunes dos Santos Vieira
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 */

// Package metainfo builds a validated BitTorrent metainfo model on top of
// package bencode's decoded tree: the announce URL, the info-hash, and the
// file layout a .torrent describes, with every field checked against the
// shape BEP 3 requires before it reaches a caller.
package metainfo

import (
	"crypto/sha1"
	"fmt"
	"iter"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/benclib/bencode/internal/bencode"
)

// File describes a single file within a torrent's content, whether it is
// the sole file of a single-file torrent or one entry of a multi-file
// torrent's file list.
type File struct {
	length int64
	path   []string
	md5sum []byte
}

// Length reports the file's size in bytes.
func (f *File) Length() int64 { return f.length }

// MD5Sum returns the file's advisory MD5 checksum, if one was present.
func (f *File) MD5Sum() ([]byte, bool) {
	if f.md5sum == nil {
		return nil, false
	}
	return f.md5sum, true
}

// Paths yields the file's path components in order, from the outermost
// directory to the file name. Each call to Paths returns a fresh,
// restartable iterator; ranging over it more than once yields the
// components again from the start.
func (f *File) Paths() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range f.path {
			if !yield(p) {
				return
			}
		}
	}
}

// InfoDictionary is the validated form of a torrent's info dictionary:
// the piece layout shared by every file, and the file or files it
// describes.
type InfoDictionary struct {
	pieceLength int64
	pieces      [][20]byte
	private     bool
	directory   *string // non-nil only for multi-file torrents
	files       []File
}

// PieceLength reports the number of bytes per piece, save for the final
// piece of the content, which may be shorter.
func (d *InfoDictionary) PieceLength() int64 { return d.pieceLength }

// IsPrivate reports whether the torrent is marked private (BEP 27): peers
// must only be discovered through the torrent's own tracker, never
// through DHT or peer exchange.
func (d *InfoDictionary) IsPrivate() bool { return d.private }

// Directory reports the suggested directory name for a multi-file
// torrent's content. It returns ok=false for a single-file torrent, whose
// content has no enclosing directory of its own.
func (d *InfoDictionary) Directory() (string, bool) {
	if d.directory == nil {
		return "", false
	}
	return *d.directory, true
}

// Pieces yields the SHA-1 hash of each piece of the torrent's content, in
// order. Each call returns a fresh, restartable iterator.
func (d *InfoDictionary) Pieces() iter.Seq[[20]byte] {
	return func(yield func([20]byte) bool) {
		for _, p := range d.pieces {
			if !yield(p) {
				return
			}
		}
	}
}

// Files yields the files described by the torrent's content, in the
// order they appear in the metainfo. A single-file torrent yields exactly
// one File. Each call returns a fresh, restartable iterator.
func (d *InfoDictionary) Files() iter.Seq[*File] {
	return func(yield func(*File) bool) {
		for i := range d.files {
			if !yield(&d.files[i]) {
				return
			}
		}
	}
}

// MetainfoFile is the fully parsed and validated contents of a .torrent
// file: the tracker to announce to, the content's info-hash, and the
// content layout itself, along with whatever advisory metadata the file
// carried.
type MetainfoFile struct {
	announce     *url.URL
	infoHash     [20]byte
	comment      *string
	createdBy    *string
	encoding     *string
	creationDate *int64
	info         InfoDictionary
}

// AnnounceURL returns the tracker URL the torrent should be announced to.
func (m *MetainfoFile) AnnounceURL() *url.URL { return m.announce }

// InfoHash returns the SHA-1 hash of the canonical encoding of the
// torrent's info dictionary, the identifier trackers and peers use to
// refer to this torrent's content.
func (m *MetainfoFile) InfoHash() [20]byte { return m.infoHash }

// Comment returns the torrent's free-form comment, if present and valid.
func (m *MetainfoFile) Comment() (string, bool) { return derefString(m.comment) }

// CreatedBy returns the name of the program that created the torrent, if
// present and valid.
func (m *MetainfoFile) CreatedBy() (string, bool) { return derefString(m.createdBy) }

// Encoding returns the advisory text encoding the torrent's author used
// for comment and created by, if present and valid.
func (m *MetainfoFile) Encoding() (string, bool) { return derefString(m.encoding) }

// CreationDate returns the torrent's creation time as a Unix timestamp,
// if present.
func (m *MetainfoFile) CreationDate() (int64, bool) {
	if m.creationDate == nil {
		return 0, false
	}
	return *m.creationDate, true
}

// Info returns the torrent's validated info dictionary.
func (m *MetainfoFile) Info() *InfoDictionary { return &m.info }

func derefString(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// Parse decodes and validates data as a BitTorrent metainfo file. It
// never returns a raw bencode.ParseError produced by malformed byte
// syntax without translating it first; every failure comes back as a
// bencode.ParseError of kind CorruptData or MissingData, so callers never
// have to distinguish "bad bencode" from "well-formed bencode that isn't
// a valid torrent".
func Parse(data []byte) (*MetainfoFile, error) {
	root, err := bencode.Decode(data, bencode.DefaultDecodeOptions())
	if err != nil {
		return nil, bencode.NewCorruptDataError("not valid bencode", err)
	}
	if root.Kind() != bencode.KindDict {
		return nil, bencode.NewMissingDataError("root dictionary")
	}

	announceBytes, err := requireBytes(root, AnnounceKey)
	if err != nil {
		return nil, bencode.NewMissingDataError(AnnounceKey)
	}
	announceURL, err := url.Parse(string(announceBytes))
	if err != nil {
		return nil, bencode.NewMissingDataError(AnnounceKey)
	}

	infoNode, ok := root.DictGet([]byte(InfoKey))
	if !ok || infoNode.Kind() != bencode.KindDict {
		return nil, bencode.NewMissingDataError(InfoKey)
	}
	infoHash := sha1.Sum(infoNode.Encode())

	info, err := parseInfoDictionary(infoNode)
	if err != nil {
		return nil, err
	}

	m := &MetainfoFile{
		announce: announceURL,
		infoHash: infoHash,
		info:     info,
	}
	if comment, ok := optionalUTF8String(root, CommentKey); ok {
		m.comment = &comment
	}
	if createdBy, ok := optionalUTF8String(root, CreatedByKey); ok {
		m.createdBy = &createdBy
	}
	if encoding, ok := optionalUTF8String(root, EncodingKey); ok {
		m.encoding = &encoding
	}
	if creationDate, ok := optionalInt(root, CreationDateKey); ok {
		m.creationDate = &creationDate
	}
	return m, nil
}

func parseInfoDictionary(info bencode.Node) (InfoDictionary, error) {
	pieceLength, err := requireInt(info, PieceLengthKey)
	if err != nil || pieceLength <= 0 {
		return InfoDictionary{}, bencode.NewMissingDataError(PieceLengthKey)
	}

	piecesBytes, err := requireBytes(info, PiecesKey)
	if err != nil {
		return InfoDictionary{}, bencode.NewMissingDataError(PiecesKey)
	}
	if len(piecesBytes)%sha1.Size != 0 {
		return InfoDictionary{}, bencode.NewCorruptDataError(
			fmt.Sprintf("Piece Hash Length Of %d Is Invalid", len(piecesBytes)), nil)
	}
	pieces := make([][20]byte, len(piecesBytes)/sha1.Size)
	for i := range pieces {
		copy(pieces[i][:], piecesBytes[i*sha1.Size:(i+1)*sha1.Size])
	}

	private := false
	if v, ok := optionalInt(info, PrivateKey); ok && v == 1 {
		private = true
	}

	if _, hasLength := info.DictGet([]byte(LengthKey)); hasLength {
		f, err := parseSingleFile(info)
		if err != nil {
			return InfoDictionary{}, err
		}
		return InfoDictionary{
			pieceLength: pieceLength,
			pieces:      pieces,
			private:     private,
			files:       []File{f},
		}, nil
	}

	name, err := requireUTF8String(info, NameKey)
	if err != nil {
		return InfoDictionary{}, bencode.NewMissingDataError(NameKey)
	}
	filesNode, ok := info.DictGet([]byte(FilesKey))
	if !ok || filesNode.Kind() != bencode.KindList {
		return InfoDictionary{}, bencode.NewMissingDataError(FilesKey)
	}
	items, _ := filesNode.List()
	if len(items) == 0 {
		return InfoDictionary{}, bencode.NewCorruptDataError("files list is empty", nil)
	}
	files := make([]File, 0, len(items))
	for _, item := range items {
		if item.Kind() != bencode.KindDict {
			return InfoDictionary{}, bencode.NewCorruptDataError("file entry is not a dictionary", nil)
		}
		f, err := parseMultiFile(item)
		if err != nil {
			return InfoDictionary{}, err
		}
		files = append(files, f)
	}

	return InfoDictionary{
		pieceLength: pieceLength,
		pieces:      pieces,
		private:     private,
		directory:   &name,
		files:       files,
	}, nil
}

func parseSingleFile(info bencode.Node) (File, error) {
	length, err := requireInt(info, LengthKey)
	if err != nil {
		return File{}, bencode.NewMissingDataError(LengthKey)
	}
	if length < 0 {
		return File{}, bencode.NewCorruptDataError("negative file length", nil)
	}
	name, err := requireUTF8String(info, NameKey)
	if err != nil {
		return File{}, bencode.NewMissingDataError(NameKey)
	}
	if err := validatePathComponent(name); err != nil {
		return File{}, err
	}
	md5, _ := optionalBytes(info, MD5SumKey)
	return File{length: length, path: []string{name}, md5sum: md5}, nil
}

func parseMultiFile(fileDict bencode.Node) (File, error) {
	length, err := requireInt(fileDict, LengthKey)
	if err != nil {
		return File{}, bencode.NewMissingDataError(LengthKey)
	}
	if length < 0 {
		return File{}, bencode.NewCorruptDataError("negative file length", nil)
	}

	pathNode, ok := fileDict.DictGet([]byte(PathKey))
	if !ok || pathNode.Kind() != bencode.KindList {
		return File{}, bencode.NewMissingDataError(PathKey)
	}
	items, _ := pathNode.List()
	if len(items) == 0 {
		return File{}, bencode.NewCorruptDataError("path list is empty", nil)
	}

	path := make([]string, 0, len(items))
	for _, item := range items {
		b, ok := item.Bytes()
		if !ok {
			return File{}, bencode.NewCorruptDataError("path component is not a byte string", nil)
		}
		if !utf8.Valid(b) {
			return File{}, bencode.NewCorruptDataError("path component is not valid UTF-8", nil)
		}
		s := string(b)
		if err := validatePathComponent(s); err != nil {
			return File{}, err
		}
		path = append(path, s)
	}

	md5, _ := optionalBytes(fileDict, MD5SumKey)
	return File{length: length, path: path, md5sum: md5}, nil
}

// validatePathComponent rejects empty components, "." and "..", and any
// component that embeds a path separator: a torrent's path list is
// already split into components, so a separator inside one of them
// signals either a malicious or a malformed torrent.
func validatePathComponent(s string) error {
	if s == "" {
		return bencode.NewCorruptDataError("empty path component", nil)
	}
	if s == "." || s == ".." {
		return bencode.NewCorruptDataError(fmt.Sprintf("path component %q is not allowed", s), nil)
	}
	if strings.ContainsRune(s, filepath.Separator) || strings.ContainsAny(s, "/\\") {
		return bencode.NewCorruptDataError(fmt.Sprintf("path component %q contains a path separator", s), nil)
	}
	return nil
}
