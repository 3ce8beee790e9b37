package formats

import (
	"encoding/xml"
	"fmt"

	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
)

// XMLPack is the classic level pack layout:
//
//	<levelPack name="...">
//	  <levels>
//	    <level number="1" points="1000" time="30">
//	      <ball startx="1" starty="1"/>
//	      <hole x="14" y="7"/>
//	      <obstacles><obstacle type="deadly" texture="lava" x="4" y="0" w="1" h="6"/></obstacles>
//	      <traps><trap texture="pit" x="8" y="4" w="1" h="1"/></traps>
//	    </level>
//	  </levels>
//	</levelPack>
type XMLPack struct {
	XMLName xml.Name   `xml:"levelPack"`
	Name    string     `xml:"name,attr"`
	Levels  []XMLLevel `xml:"levels>level"`
}

// XMLLevel is one <level> element.
type XMLLevel struct {
	Number    int           `xml:"number,attr"`
	Name      string        `xml:"name,attr"`
	Points    int           `xml:"points,attr"`
	Time      int           `xml:"time,attr"`
	Ball      XMLBall       `xml:"ball"`
	Hole      XMLHole       `xml:"hole"`
	Obstacles []XMLObstacle `xml:"obstacles>obstacle"`
	Traps     []XMLRect     `xml:"traps>trap"`
}

// XMLBall holds the ball start attributes.
type XMLBall struct {
	StartX float64 `xml:"startx,attr"`
	StartY float64 `xml:"starty,attr"`
}

// XMLHole holds the goal attributes.
type XMLHole struct {
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Radius float64 `xml:"radius,attr"`
}

// XMLRect holds rectangle attributes shared by traps and obstacles.
type XMLRect struct {
	Texture string  `xml:"texture,attr"`
	X       float64 `xml:"x,attr"`
	Y       float64 `xml:"y,attr"`
	W       float64 `xml:"w,attr"`
	H       float64 `xml:"h,attr"`
}

// XMLObstacle is an <obstacle> element.
type XMLObstacle struct {
	XMLRect
	Type string `xml:"type,attr"`
}

// ParseXML parses an XML level pack.
func ParseXML(data []byte) (Pack, error) {
	var xp XMLPack
	if err := xml.Unmarshal(data, &xp); err != nil {
		return Pack{}, fmt.Errorf("xml unmarshal: %w", err)
	}

	pack := Pack{Name: xp.Name, Levels: make([]engine.Level, 0, len(xp.Levels))}
	for _, xl := range xp.Levels {
		lvl := engine.Level{
			Number:    xl.Number,
			Name:      xl.Name,
			Ball:      engine.Point{X: xl.Ball.StartX, Y: xl.Ball.StartY},
			Hole:      engine.Hole{X: xl.Hole.X, Y: xl.Hole.Y, Radius: xl.Hole.Radius},
			TimeLimit: xl.Time,
			Points:    xl.Points,
		}

		for _, o := range xl.Obstacles {
			kind, err := engine.ParseObstacleKind(o.Type)
			if err != nil {
				return Pack{}, fmt.Errorf("level %d: %w", xl.Number, err)
			}
			lvl.Obstacles = append(lvl.Obstacles, engine.Obstacle{
				X: o.X, Y: o.Y, W: o.W, H: o.H,
				Kind:    kind,
				Texture: o.Texture,
			})
		}
		for _, t := range xl.Traps {
			lvl.Traps = append(lvl.Traps, engine.Trap{X: t.X, Y: t.Y, W: t.W, H: t.H, Texture: t.Texture})
		}

		pack.Levels = append(pack.Levels, lvl)
	}

	return pack, nil
}
