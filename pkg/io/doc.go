// Package io provides JSON import and export for templates.
//
// # JSON Format
//
// A template is a JSON object with a name, an optional background asset
// reference, and an ordered array of frames (bottom to top):
//
//	{
//	  "name": "greeting-card",
//	  "background": "backgrounds/card.png",
//	  "frames": [
//	    {"id": "f1", "kind": "image", "x": 100, "y": 100,
//	     "width": 240, "height": 160, "shape": "rectangle"},
//	    {"id": "f2", "kind": "text", "x": 100, "y": 300,
//	     "width": 400, "height": 80, "shape": "rectangle",
//	     "properties": {"fontFamily": "default", "fontSize": 24,
//	       "color": "#333333", "textAlign": "center",
//	       "placeholder": "Your text here"}}
//	  ]
//	}
//
// Frame order in the array is stacking order. The "visible" field
// defaults to true when absent so hand-written templates display their
// frames. Rotation is stored exactly as authored, including values
// outside [0,360).
//
// # Round-tripping
//
// [ReadJSON] and [WriteJSON] preserve every frame field, including the
// opaque image-adjustment metadata, so import, edit, export, and
// re-import is lossless. Both validate the template; a file that decodes
// but violates geometry or shape constraints is rejected on read, and an
// in-memory template that drifted out of bounds is rejected on write.
//
// [ImportJSON] and [ExportJSON] are the file-path convenience wrappers.
package io
