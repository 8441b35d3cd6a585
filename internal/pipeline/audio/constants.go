package audio

const bytesPerSample = 4 // float32 PCM
