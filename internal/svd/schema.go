package svd

import "encoding/xml"

// Raw document types mirroring the CMSIS-SVD subset the model covers.
// Numeric values stay strings here: SVD mixes decimal, hex, and binary
// spellings, parsed by the helpers in parse.go.

type document struct {
	XMLName     xml.Name            `xml:"device"`
	Vendor      string              `xml:"vendor"`
	Name        string              `xml:"name"`
	Series      string              `xml:"series"`
	Description string              `xml:"description"`
	LicenseText string              `xml:"licenseText"`
	CPU         *cpuElement         `xml:"cpu"`
	Size        *string             `xml:"size"`
	Access      *string             `xml:"access"`
	Peripherals []peripheralElement `xml:"peripherals>peripheral"`
}

type cpuElement struct {
	Name                string `xml:"name"`
	Revision            string `xml:"revision"`
	NVICPrioBits        string `xml:"nvicPrioBits"`
	FPUPresent          string `xml:"fpuPresent"`
	MPUPresent          string `xml:"mpuPresent"`
	DeviceNumInterrupts string `xml:"deviceNumInterrupts"`
}

type peripheralElement struct {
	DerivedFrom      string             `xml:"derivedFrom,attr"`
	Name             string             `xml:"name"`
	Version          string             `xml:"version"`
	Description      string             `xml:"description"`
	GroupName        string             `xml:"groupName"`
	HeaderStructName string             `xml:"headerStructName"`
	PrependToName    string             `xml:"prependToName"`
	AppendToName     string             `xml:"appendToName"`
	BaseAddress      string             `xml:"baseAddress"`
	Size             *string            `xml:"size"`
	Access           *string            `xml:"access"`
	Dim              *string            `xml:"dim"`
	DimIncrement     *string            `xml:"dimIncrement"`
	DimName          string             `xml:"dimName"`
	Interrupts       []interruptElement `xml:"interrupt"`
	Registers        *registersElement  `xml:"registers"`
}

type interruptElement struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Value       string `xml:"value"`
}

type registersElement struct {
	Registers []registerElement `xml:"register"`
	Clusters  []clusterElement  `xml:"cluster"`
}

type clusterElement struct {
	DerivedFrom      string            `xml:"derivedFrom,attr"`
	Name             string            `xml:"name"`
	Description      string            `xml:"description"`
	AddressOffset    string            `xml:"addressOffset"`
	HeaderStructName string            `xml:"headerStructName"`
	Size             *string           `xml:"size"`
	Access           *string           `xml:"access"`
	Dim              *string           `xml:"dim"`
	DimIncrement     *string           `xml:"dimIncrement"`
	DimName          string            `xml:"dimName"`
	Registers        []registerElement `xml:"register"`
	Clusters         []clusterElement  `xml:"cluster"`
}

type registerElement struct {
	DerivedFrom   string         `xml:"derivedFrom,attr"`
	Name          string         `xml:"name"`
	Description   string         `xml:"description"`
	AddressOffset string         `xml:"addressOffset"`
	Size          *string        `xml:"size"`
	Access        *string        `xml:"access"`
	ResetValue    *string        `xml:"resetValue"`
	Dim           *string        `xml:"dim"`
	DimIncrement  *string        `xml:"dimIncrement"`
	DimName       string         `xml:"dimName"`
	Fields        []fieldElement `xml:"fields>field"`
}

type fieldElement struct {
	DerivedFrom      string       `xml:"derivedFrom,attr"`
	Name             string       `xml:"name"`
	Description      string       `xml:"description"`
	BitOffset        *string      `xml:"bitOffset"`
	BitWidth         *string      `xml:"bitWidth"`
	Lsb              *string      `xml:"lsb"`
	Msb              *string      `xml:"msb"`
	BitRange         *string      `xml:"bitRange"`
	Access           *string      `xml:"access"`
	Dim              *string      `xml:"dim"`
	DimIncrement     *string      `xml:"dimIncrement"`
	EnumeratedValues *enumElement `xml:"enumeratedValues"`
}

type enumElement struct {
	DerivedFrom string             `xml:"derivedFrom,attr"`
	Name        string             `xml:"name"`
	Values      []enumValueElement `xml:"enumeratedValue"`
}

type enumValueElement struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Value       string `xml:"value"`
}
