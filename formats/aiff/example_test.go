// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/formats/aiff"
)

// ExampleDecoder_Decode shows how to decode an AIFF file and loop it.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	streamer, err := audio.NewStreamer(src)
	if err != nil {
		log.Fatal(err)
	}

	buf := make([]int32, 1024*streamer.Channels())
	if _, err := streamer.Fill(buf, 1024); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded AIFF: %d Hz, %d channels, %d frames\n",
		src.SampleRate(), src.Channels(), src.Frames())
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid AIFF files.
func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("AIFF decoded successfully")
}
