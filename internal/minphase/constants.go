package minphase

// defaultFloorRatio keeps log|H| finite for bins at or near zero. 1e-12 of
// the peak is -240 dB, far below any stopband the kernels reach.
const defaultFloorRatio = 1e-12
