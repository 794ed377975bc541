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

package metainfo

// Dictionary keys recognized in a .torrent file, per BEP 3.
const (
	AnnounceKey     = "announce"
	InfoKey         = "info"
	CommentKey      = "comment"
	CreatedByKey    = "created by"
	CreationDateKey = "creation date"
	EncodingKey     = "encoding"

	PieceLengthKey = "piece length"
	PiecesKey      = "pieces"
	PrivateKey     = "private"
	NameKey        = "name"

	LengthKey = "length"
	MD5SumKey = "md5sum"
	FilesKey  = "files"
	PathKey   = "path"
)
