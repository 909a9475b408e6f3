package shape

// fullScaleSinePower is the mean power of a unit-amplitude sine.
const fullScaleSinePower = 0.5
