package calculation

import "time"

// nowFunc stamps reports; package tests swap it for a fixed clock.
var nowFunc = time.Now
