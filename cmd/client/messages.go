package main

var sampleMessages = []string{
	"buy milk",
	"call the plumber",
	"renew passport",
	"book dentist",
	"water the plants",
}
