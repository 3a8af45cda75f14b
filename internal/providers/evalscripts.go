package providers

import "region-analytics/internal/models"

// Evalscripts submitted with each statistical request. The provider computes
// the index per pixel and pre-aggregates; this service only ever sees the
// resulting statistics.

const ndviEvalscript = `//VERSION=3
function setup() {
    return {
        input: ["B04", "B08", "dataMask"],
        output: [
            { id: "ndvi", bands: 1 },
            { id: "dataMask", bands: 1 }
        ]
    };
}

function evaluatePixel(sample) {
    let ndvi = (sample.B08 - sample.B04) / (sample.B08 + sample.B04);
    return {
        ndvi: [ndvi],
        dataMask: [sample.dataMask]
    };
}`

const ndwiEvalscript = `//VERSION=3
function setup() {
    return {
        input: ["B03", "B08", "dataMask"],
        output: [
            { id: "ndwi", bands: 1 },
            { id: "dataMask", bands: 1 }
        ]
    };
}

function evaluatePixel(sample) {
    let ndwi = (sample.B03 - sample.B08) / (sample.B03 + sample.B08);
    return {
        ndwi: [ndwi],
        dataMask: [sample.dataMask]
    };
}`

// evalscriptFor maps an index type to its evalscript and output identifier.
func evalscriptFor(indexType models.IndexType) (script string, output string) {
	switch indexType {
	case models.IndexNDWI:
		return ndwiEvalscript, "ndwi"
	default:
		return ndviEvalscript, "ndvi"
	}
}
