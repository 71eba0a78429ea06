// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/ik5/loopplay/audio"
	"github.com/ik5/loopplay/formats/mp3"
)

// ExampleDecoder_Decode shows how to decode an MP3 file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded MP3: %d Hz, %d channels, %d frames\n",
		src.SampleRate(), src.Channels(), src.Frames())
}

// ExampleDecoder_Decode_loop plays an MP3 file in a loop through a Streamer.
func ExampleDecoder_Decode_loop() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	st, err := audio.NewStreamer(src)
	if err != nil {
		log.Fatal(err)
	}

	buf := make([]int32, 1024*src.Channels())
	for st.Loops() < 3 {
		if status, err := st.Fill(buf, 1024); status == audio.Stop {
			log.Fatal(err)
		}
	}
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid MP3 files.
func ExampleDecoder_Decode_errorHandling() {
	_, err := mp3.Decoder{}.Decode(bytes.NewReader([]byte("not an mp3 file")))
	fmt.Println("failed:", err != nil)
	// Output:
	// failed: true
}
